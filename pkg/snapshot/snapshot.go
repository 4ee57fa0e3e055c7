package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// UpdateEnv is the environment variable that rewrites golden files instead of comparing them
const UpdateEnv = "PEERHOLDEM_UPDATE_SNAPSHOTS"

var (
	mu        sync.Mutex
	callCount = make(map[string]int)
)

// Filename returns the golden file of the call-th snapshot taken by the named test
func Filename(testName string, call int) string {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(testName)
	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", name, call))
}

// ValidateSnapshot compares the indented JSON of obj with the test's next golden file.
// A missing golden file is written and the comparison passes.
func ValidateSnapshot(t *testing.T, obj interface{}, msgAndArgs ...interface{}) {
	t.Helper()

	mu.Lock()
	call := callCount[t.Name()]
	callCount[t.Name()] = call + 1
	mu.Unlock()

	actual, err := json.MarshalIndent(obj, "", "  ")
	require.NoError(t, err)

	filename := Filename(t.Name(), call)
	expected, err := os.ReadFile(filename)
	if os.IsNotExist(err) || os.Getenv(UpdateEnv) != "" {
		write(t, filename, actual)
		return
	}
	require.NoError(t, err)

	if !assert.Equal(t, strings.TrimSpace(string(expected)), strings.TrimSpace(string(actual)), msgAndArgs...) {
		t.Logf("snapshot %s (set %s=1 to update)", filename, UpdateEnv)
	}
}

func write(t *testing.T, filename string, b []byte) {
	t.Helper()

	logrus.WithField("filename", filename).Info("writing snapshot file")
	require.NoError(t, os.MkdirAll(filepath.Dir(filename), 0755))
	require.NoError(t, os.WriteFile(filename, append(b, '\n'), 0644))
}
