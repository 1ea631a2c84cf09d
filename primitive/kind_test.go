package primitive_test

import (
	"fmt"
	"testing"

	"row-caster/primitive"
)

func Example() {
	fmt.Println(primitive.KindInt16)
	fmt.Println(primitive.KindInt64)
	fmt.Println(primitive.KindFloat32)
	fmt.Println(primitive.KindString)
	fmt.Println(primitive.KindEnum32)
	fmt.Println(primitive.KindEnum(0))
	// Output:
	// KindInt16
	// KindInt64
	// KindFloat32
	// KindString
	// KindEnum32
	// KindEnum(0)
}

func TestKindIsValid(t *testing.T) {
	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		if !k.IsValid() {
			t.Errorf("%s.IsValid() = false, want true", k)
		}
	}

	if primitive.KindEnum(0).IsValid() {
		t.Error("KindEnum(0).IsValid() = true, want false")
	}

	if primitive.KindEnum(primitive.KindTotal).IsValid() {
		t.Errorf("KindEnum(%d).IsValid() = true, want false", primitive.KindTotal)
	}
}
