// Package lenscorr is a reverse-mapping lens-correction core: geometry,
// chromatic aberration and vignetting correction over caller-owned pixel
// buffers, built from independently testable subpackages (mem, coord,
// geom, model, queue, interp, autoscale, transform). lenscorr.go
// re-exports the pieces most callers need so a typical correction pass
// only imports this one package.
package lenscorr
