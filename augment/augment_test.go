package augment

import (
	"testing"

	"gocv.io/x/gocv"
)

// testImage returns a mid gray 8 bit color image
func testImage(rows, cols int) gocv.Mat {
	return gocv.NewMatWithSizeFromScalar(gocv.NewScalar(128, 128, 128, 0),
		rows, cols, gocv.MatTypeCV8UC3)
}

func TestApplyPreservesShape(t *testing.T) {

	img := testImage(64, 48)
	defer img.Close()

	dest := gocv.NewMat()
	defer dest.Close()

	aug := NewSeededAugmenter(DefaultParams(), 1)

	if err := aug.Apply(img, &dest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dest.Rows() != 64 || dest.Cols() != 48 || dest.Type() != gocv.MatTypeCV8UC3 {
		t.Errorf("expected 64x48 CV8UC3 output, got %dx%d type %v",
			dest.Rows(), dest.Cols(), dest.Type())
	}
}

func TestApplyDeterministicWithSeed(t *testing.T) {

	img := testImage(32, 32)
	defer img.Close()

	first := gocv.NewMat()
	defer first.Close()

	second := gocv.NewMat()
	defer second.Close()

	// two augmenters with the same seed produce identical output
	if err := NewSeededAugmenter(DefaultParams(), 7).Apply(img, &first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := NewSeededAugmenter(DefaultParams(), 7).Apply(img, &second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, err := first.DataPtrUint8()

	if err != nil {
		t.Fatalf("error accessing first output: %v", err)
	}

	b, err := second.DataPtrUint8()

	if err != nil {
		t.Fatalf("error accessing second output: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("outputs differ at byte %d: %d != %d", i, a[i], b[i])
		}
	}
}

func TestApplyNoJitterIsIdentityWithoutNoise(t *testing.T) {

	img := testImage(16, 16)
	defer img.Close()

	dest := gocv.NewMat()
	defer dest.Close()

	// all augmentation strengths at zero leave the image unchanged
	aug := NewSeededAugmenter(Params{}, 1)

	if err := aug.Apply(img, &dest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	src, err := img.DataPtrUint8()

	if err != nil {
		t.Fatalf("error accessing source: %v", err)
	}

	out, err := dest.DataPtrUint8()

	if err != nil {
		t.Fatalf("error accessing output: %v", err)
	}

	for i := range src {
		if src[i] != out[i] {
			t.Fatalf("byte %d changed with zero strength augmentation: %d != %d",
				i, src[i], out[i])
		}
	}
}

func TestApplyRejectsWrongType(t *testing.T) {

	gray := gocv.NewMatWithSize(32, 32, gocv.MatTypeCV8UC1)
	defer gray.Close()

	dest := gocv.NewMat()
	defer dest.Close()

	aug := NewSeededAugmenter(DefaultParams(), 1)

	if err := aug.Apply(gray, &dest); err == nil {
		t.Errorf("expected error for single channel image")
	}

	empty := gocv.NewMat()
	defer empty.Close()

	if err := aug.Apply(empty, &dest); err == nil {
		t.Errorf("expected error for empty image")
	}
}
