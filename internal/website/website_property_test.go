//go:build property

package website

import (
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var slugRe = regexp.MustCompile(`^([a-z0-9]+(-[a-z0-9]+)*)?$`)

// headingGen produces Portuguese-looking headings with accents and punctuation.
func headingGen() gopter.Gen {
	alphabet := strings.Split("abcxyzABCXYZáéíóúÁÉÍãõÃçÇêô0123456789 -_!?.&", "")
	choices := make([]interface{}, len(alphabet))
	for i, r := range alphabet {
		choices[i] = r
	}
	return gen.SliceOf(gen.OneConstOf(choices...)).Map(func(parts []string) string {
		return strings.Join(parts, "")
	})
}

func TestSlugProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("output is lower-case ascii words joined by single dashes", prop.ForAll(
		func(s string) bool {
			return slugRe.MatchString(Slug(s))
		},
		headingGen(),
	))

	properties.Property("slug is idempotent", prop.ForAll(
		func(s string) bool {
			once := Slug(s)
			return Slug(once) == once
		},
		headingGen(),
	))

	properties.Property("case does not change the anchor", prop.ForAll(
		func(s string) bool {
			return Slug(s) == Slug(strings.ToUpper(s))
		},
		headingGen(),
	))

	properties.TestingRun(t)
}

func TestParticleProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("particles stay inside their ranges", prop.ForAll(
		func(seed uint64, n int) bool {
			ps := Particles(seed, n)
			if len(ps) != n {
				return false
			}
			for _, p := range ps {
				if p.Size < 1 || p.Size > 4 ||
					p.X < 0 || p.X > 100 || p.Y < 0 || p.Y > 100 ||
					p.Duration < 10 || p.Duration > 20 ||
					p.Delay < 0 || p.Delay > 5 ||
					p.Opacity < 0.1 || p.Opacity > 0.5 {
					return false
				}
			}
			return true
		},
		gen.UInt64(),
		gen.IntRange(0, 60),
	))

	properties.Property("a seed always draws the same background", prop.ForAll(
		func(seed uint64) bool {
			return reflect.DeepEqual(Particles(seed, ParticleCount), Particles(seed, ParticleCount))
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
