package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumarques81/mixerd/internal/domain/daemon"
	"github.com/edumarques81/mixerd/internal/domain/status"
	"github.com/edumarques81/mixerd/internal/types"
)

func TestObserveRegistry(t *testing.T) {
	m := New()
	r := daemon.NewRegistry("test")
	m.Observe(r)

	_, err := r.Attach(status.HardwareStatus{SerialNumber: "A", DeviceType: types.DeviceTypeFull})
	require.NoError(t, err)
	_, err = r.Attach(status.HardwareStatus{SerialNumber: "B", DeviceType: types.DeviceTypeMini})
	require.NoError(t, err)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.attached))

	for i := 0; i < 3; i++ {
		require.NoError(t, r.Update("A", func(s *status.MixerStatus) error {
			s.SetChannelVolume(types.ChannelMusic, uint8(i))
			return nil
		}))
	}
	assert.Equal(t, 3.0, testutil.ToFloat64(m.updates.WithLabelValues("A")))

	require.NoError(t, r.Detach("A"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.attached))
	assert.Equal(t, 0, testutil.CollectAndCount(m.updates))
}

func TestCountersAndHandler(t *testing.T) {
	m := New()
	m.SnapshotServed(ScopeDaemon)
	m.SnapshotServed(ScopeMixer)
	m.SnapshotServed(ScopeMixer)
	m.Rescanned(nil)
	m.Rescanned(errors.New("denied"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.snapshots.WithLabelValues(ScopeMixer)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rescans.WithLabelValues("error")))

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `mixerd_snapshots_total{scope="mixer"} 2`)
	assert.Contains(t, string(body), "mixerd_attached_mixers 0")
	assert.Contains(t, string(body), "go_goroutines")
}
