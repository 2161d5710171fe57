package randcheck_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/sergeizaitcev/randomizer/pkg/randcheck"
)

func TestRandCheck(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), randcheck.Analyzer, "./...")
}
