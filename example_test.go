package rawlinear_test

import (
	"context"
	"fmt"

	"github.com/vearutop/rawlinear"
)

func ExampleLoadRaw() {
	img, err := rawlinear.LoadRaw("testdata/sample.dng", func(o *rawlinear.Options) {
		o.ColorSpace = "srgb"
		o.HalfSize = true
	})
	if err != nil {
		return
	}

	_ = rawlinear.WriteFile("testdata/sample.exr", img)
}

func ExampleLoadRawFiles() {
	for _, res := range rawlinear.LoadRawFiles(context.Background(), []string{"a.nef", "b.nef"}, 2) {
		if res.Err != nil {
			continue
		}
		_ = rawlinear.WriteFile(res.Path+".f32.zst", res.Image)
	}
}

func ExampleResolve() {
	cfg := rawlinear.Resolve(&rawlinear.Options{ColorSpace: "SRGB"})
	fmt.Println(cfg.ColorSpace, cfg.OutputBPS, cfg.Gamma)

	// Output:
	// xyz 16 [1 1]
}
