package tests

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/y-b-dev/ts-result-type/pkg/result"
	"github.com/y-b-dev/ts-result-type/pkg/result/chain"
)

var errEmpty = errors.New("empty input")

// processIDs runs each raw id through the full pipeline:
// trim -> reject empty -> parse as UUID -> render, collapsing failures
// to "invalid".
func processIDs(raw []string) []string {
	out := make([]string, 0, len(raw))

	for _, s := range raw {
		out = append(out, chain.Finally(
			chain.Try(
				chain.Start(result.Validate(strings.TrimSpace(s),
					func(in string) bool { return in != "" }, errEmpty)),
				uuid.Parse),
			func(id uuid.UUID) string { return id.String() },
			func(err error) string { return "invalid" }))
	}

	return out
}

func TestIDProcessingPipeline(t *testing.T) {
	raw := []string{
		// valid ids, some needing trimming
		"5f8ad6c8-4a38-4f16-9c3b-5a8f8e1d2b44",
		"  c56a4180-65aa-42ec-a945-5fd21dec0538  ",
		"9b2f0c84-3d4e-45f7-8a16-05e6f2b9d0aa",

		// invalid ids
		"not-a-uuid",
		"",
	}

	results := processIDs(raw)

	assert.Equal(t, len(raw), len(results))

	invalidCount := 0
	for _, res := range results {
		if res == "invalid" {
			invalidCount++
		}
	}
	assert.Equal(t, 2, invalidCount)

	// trimmed input must round-trip to its canonical form
	assert.Equal(t, "c56a4180-65aa-42ec-a945-5fd21dec0538", results[1])
}

func TestIDAggregation(t *testing.T) {
	parse := func(s string) result.Result[uuid.UUID, error] {
		return result.Try(result.Ok[string, error](s), uuid.Parse)
	}

	valid := []result.Result[uuid.UUID, error]{
		parse("5f8ad6c8-4a38-4f16-9c3b-5a8f8e1d2b44"),
		parse("c56a4180-65aa-42ec-a945-5fd21dec0538"),
	}

	all := result.All(valid...)
	assert.True(t, all.IsSuccess())
	assert.Len(t, all.Value(), 2)

	mixed := append(valid, parse("not-a-uuid"))
	broken := result.All(mixed...)
	assert.True(t, broken.IsFailure())

	ids, errs := result.Partition(mixed)
	assert.Len(t, ids, 2)
	assert.Len(t, errs, 1)
}
