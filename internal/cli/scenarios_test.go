package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const basicScenarioYAML = `name: cli_basic
description: "two adds and a search"
run_id: run-cli
steps:
  - op: add
    value: 3
  - op: add
    value: 1
  - op: index_of
    value: 1
    expect:
      result: 1
assertions:
  - type: final_values
    values: [3, 1]
`

const basicScenarioCanonical = `{"events":[` +
	`{"args":[3],"op":"add","seq":1,"values":[3]},` +
	`{"args":[1],"op":"add","seq":2,"values":[3,1]},` +
	`{"args":[1],"op":"index_of","result":1,"seq":3,"values":[3,1]}` +
	`],"name":"cli_basic","run_id":"run-cli"}`

const failingScenarioYAML = `name: cli_failing
description: "expects the wrong contents"
steps:
  - op: add
    value: 1
    expect:
      values: [2]
`

const sortScenarioCUE = `name:        "cli_sort"
description: "sort from a CUE file"
steps: [{op: "sort", input: [2, 1, 2, 0]}]
assertions: [{type: "sorted"}]
`

// writeScenario writes content to dir/file and returns the path.
func writeScenario(t *testing.T, dir, file, content string) string {
	t.Helper()
	path := filepath.Join(dir, file)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
