package pedersen

import (
	"github.com/smallyu/go-stark-crypto/internal/crypto/curves"
	"github.com/smallyu/go-stark-crypto/internal/crypto/field"
)

// Public parameters of the STARK Pedersen hash.
var (
	shiftPoint = mustPoint(
		"0x49ee3eba8c1600700ee1b87eb599f16716b0b1022947733551fde4050ca6804",
		"0x3ca0cfe4b3bc6ddf346d49d06ea0ed34e621062c0e056c1d0405d266e10268a",
	)

	// P1, P2 for the first input and P3, P4 for the second.
	inputPoints = [4]curves.Point{
		mustPoint(
			"0x234287dcbaffe7f969c748655fca9e58fa8120b6d56eb0c1080d17957ebe47b",
			"0x3b056f100f96fb21e889527d41f4e39940135dd7a6c94cc6ed0268ee89e5615",
		),
		mustPoint(
			"0x4fa56f376c83db33f9dab2656558f3399099ec1de5e3018b7a6932dba8aa378",
			"0x3fa0984c931c9e38113e0c0e47e4401562761f92a7a23b45168f4e80ff5b54d",
		),
		mustPoint(
			"0x4ba4cc166be8dec764910f75b45f74b40c690c74709e90f3aa372f0bd2d6997",
			"0x40301cf5c1751f4b971e46c4ede85fcac5c59a5ce5ae7c48151f27b24b219c",
		),
		mustPoint(
			"0x54302dcb0e6cc1c6e44cca8f61a63bb2ca65048d53fb325d36ff12c49a58202",
			"0x1b77b3e37d13504b348046268d8ae25ce98ad783c25561a879dcc77e99c2426",
		),
	}
)

// ShiftPoint returns P0, the starting point of every hash.
func ShiftPoint() curves.Point {
	return shiftPoint
}

func mustPoint(x, y string) curves.Point {
	px, err := field.Parse(x)
	if err != nil {
		panic(err)
	}
	py, err := field.Parse(y)
	if err != nil {
		panic(err)
	}
	p, err := curves.NewPoint(px, py)
	if err != nil {
		panic(err)
	}
	return p
}
