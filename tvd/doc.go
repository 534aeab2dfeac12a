// Package tvd denoises images by total-variation regularization.
//
// The solver is the accelerated first-order primal-dual algorithm of
// Chambolle and Pock (2011). Color images can be denoised with the three
// channels coupled through a shared dual constraint, following Bredies
// (2014), or channel by channel.
package tvd
