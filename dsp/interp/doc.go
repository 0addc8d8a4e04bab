// Package interp provides interpolation kernels for fractional table and
// delay-line reads.
//
// Available methods, from cheapest to highest quality:
//
//   - [Linear2]:  2-point linear interpolation
//   - [Hermite4]: 4-point cubic Hermite (good default for oversampled tables)
package interp
