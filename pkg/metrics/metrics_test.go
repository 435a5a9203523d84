package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/core-tools/hsu-srvcfg/pkg/errors"
	"github.com/core-tools/hsu-srvcfg/pkg/managed"
	"github.com/core-tools/hsu-srvcfg/pkg/orchestrator"
)

func TestMetrics_EditRequested(t *testing.T) {
	m := New()

	m.EditRequested("bmcweb", managed.PortEdit(8443), nil)
	m.EditRequested("bmcweb", managed.PortEdit(70000), errors.NewInvalidEditError("out of range", nil))
	m.EditRequested("bmcweb", managed.RunningEdit(true), errors.NewConcurrentEditError("in flight", nil))
	m.EditRequested("bmcweb", managed.RunningEdit(true), errors.NewTransportError("dbus", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.edits.WithLabelValues("bmcweb", "Port", ResultAccepted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.edits.WithLabelValues("bmcweb", "Port", ResultInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.edits.WithLabelValues("bmcweb", "Running", ResultConcurrent)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.edits.WithLabelValues("bmcweb", "Running", ResultError)))
}

func TestMetrics_UnitChanged(t *testing.T) {
	m := New()

	m.UnitChanged(managed.View{
		Name:      "dropbear",
		HasSocket: true,
		State:     managed.State{Enabled: true, Running: true, Port: 22},
		Pending:   managed.NewEditSet(managed.FieldPort),
	})

	assert.Equal(t, 0.0, testutil.ToFloat64(m.unitState.WithLabelValues("dropbear", "masked")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.unitState.WithLabelValues("dropbear", "enabled")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.unitState.WithLabelValues("dropbear", "running")))
	assert.Equal(t, 22.0, testutil.ToFloat64(m.unitPort.WithLabelValues("dropbear")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.unitPending.WithLabelValues("dropbear")))
}

func TestMetrics_CycleCompleted(t *testing.T) {
	m := New()

	m.CycleCompleted(&orchestrator.CycleReport{})
	assert.Equal(t, 0.0, testutil.ToFloat64(m.cycles))

	m.CycleCompleted(&orchestrator.CycleReport{
		Dirty:       []string{"bmcweb", "obmc-ikvm"},
		Duration:    1500 * time.Millisecond,
		ReloadError: errors.NewTransportError("reload", nil),
		Failed: map[string]error{
			"bmcweb": errors.NewConfigWriteError("override", nil),
		},
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.cycles))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reloadErrors))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.unitFailures.WithLabelValues("bmcweb", "config_write")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.cycleDuration))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.EditRequested("bmcweb", managed.EnabledEdit(true), nil)

	server := httptest.NewServer(m.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	buf := new(strings.Builder)
	_, err = io.Copy(buf, resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `srvcfg_edits_total{property="Enabled",result="accepted",unit="bmcweb"} 1`)
}
