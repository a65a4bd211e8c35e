// Package rawlinear converts camera raw files into linear float32 RGB buffers.
//
// Sensor decoding, demosaic and color matrices are delegated to an external raw engine
// (LibRaw when built with the libraw tag). This package configures the engine with a fixed
// linear policy, drives one decode per call and packs the engine output into a contiguous,
// row-major RGB float32 buffer normalized to [0,1].
package rawlinear
