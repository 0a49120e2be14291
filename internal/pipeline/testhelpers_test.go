package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const salesView = `{
  "locale": "en-US",
  "objects": {"postfixSettings": {"show": true}},
  "table": {
    "columns": [
      {"displayName": "Revenue", "roles": {"mainMeasure": true}, "type": {"numeric": true}},
      {"displayName": "Change", "roles": {"postfixMeasure": true}, "type": {"numeric": true}}
    ],
    "rows": [[1500000, 12]]
  }
}`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

type recorder struct {
	started, finished []string
	failed            map[string]string
}

func (r *recorder) RenderingStarted(id string)  { r.started = append(r.started, id) }
func (r *recorder) RenderingFinished(id string) { r.finished = append(r.finished, id) }
func (r *recorder) RenderingFailed(id, reason string) {
	if r.failed == nil {
		r.failed = make(map[string]string)
	}
	r.failed[id] = reason
}
