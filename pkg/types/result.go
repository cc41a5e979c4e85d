package types

// Test result statuses conventionally produced by result files. Statuses
// are not validated against this list; unknown values pass through to the
// matrix unchanged so newer runners stay compatible.
const (
	StatusPassed  = "passed"
	StatusFailure = "failure"
	StatusError   = "error"
	StatusSkipped = "skipped"
)

// TestResult is one recorded outcome of one test function run against a
// test item.
type TestResult struct {
	Function   string `json:"function" yaml:"function"`
	ResultFile string `json:"result_file" yaml:"result_file"`
	Status     string `json:"status" yaml:"status"`
}

// ResultSet maps a test item id to its recorded outcomes in run order.
// Multiple runs per id are preserved; the matrix shows history, not just
// the latest outcome.
type ResultSet map[string][]TestResult
