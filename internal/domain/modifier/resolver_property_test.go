package modifier

import (
	"math/rand"
	"testing"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestResolve_OrderIndependentProperty(t *testing.T) {
	f := newLatte()
	base := []uuid.UUID{f.medium.ID, f.oat.ID, f.vanilla.ID, f.shot.ID, f.shot.ID}

	want, err := Resolve(f.product, base)
	if err != nil {
		t.Fatalf("resolve baseline: %v", err)
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("shuffled input resolves identically", prop.ForAll(
		func(seed int64) bool {
			shuffled := append([]uuid.UUID(nil), base...)
			rnd := rand.New(rand.NewSource(seed))
			rnd.Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})

			got, err := Resolve(f.product, shuffled)
			if err != nil || len(got) != len(want) {
				return false
			}
			for i := range got {
				if got[i].OptionID != want[i].OptionID || got[i].GroupID != want[i].GroupID {
					return false
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.Property("unattached options are always unknown", prop.ForAll(
		func(active bool) bool {
			stray := option(uuid.New(), "Stray", "0", active)
			_, err := Resolve(f.product, []uuid.UUID{f.small.ID, f.whole.ID, stray.ID})
			var re *RuleError
			return errors.As(err, &re) && re.Kind == KindUnknownOption && re.OptionID == stray.ID
		},
		gen.Bool(),
	))

	properties.TestingRun(t)
}
