package classifier_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/glyphid/classifier"
	"github.com/katalvlaran/glyphid/stroke"
)

// ExampleClassifier_Classify builds a two-label classifier from an inline
// snapshot and classifies a query that closely traces the "vee" shape.
func ExampleClassifier_Classify() {
	const snapshot = `
flat-line:
  - [[[0, 0], [1, 0], [2, 0]]]
vee:
  - [[[0, 0], [1, 10], [2, 0]]]
`
	cl, err := classifier.FromSnapshot(strings.NewReader(snapshot))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	query, err := stroke.NewSample([]stroke.Stroke{{
		{X: 0, Y: 0}, {X: 1, Y: 9.8}, {X: 2, Y: 0},
	}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	scores := cl.Classify(query)
	fmt.Println(scores[0].ID)
	// Output:
	// vee
}
