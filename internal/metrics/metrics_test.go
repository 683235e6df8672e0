package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// TestNewCollector_ReturnsNonNil はCollectorが正常に生成されることを検証する。
func TestNewCollector_ReturnsNonNil(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	if c == nil {
		t.Fatal("expected non-nil Collector")
	}
}

// counterValue はレジストリから単一カウンタの値を取り出す。
func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	for _, mf := range metrics {
		if mf.GetName() == name {
			if len(mf.GetMetric()) != 1 {
				t.Fatalf("expected 1 metric, got %d", len(mf.GetMetric()))
			}
			return mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	t.Fatalf("%s metric not found", name)
	return 0
}

// TestRecordRunSuccess_IncrementsCounter はバッチ成功カウンタが増加することを検証する。
func TestRecordRunSuccess_IncrementsCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRunSuccess()
	c.RecordRunSuccess()

	if val := counterValue(t, reg, "traveltide_batch_run_success_total"); val != 2 {
		t.Errorf("batch_run_success_total = %v, want 2", val)
	}
}

// TestRecordRunFailure_RecordsReasonLabel は失敗理由がラベルとして記録されることを検証する。
func TestRecordRunFailure_RecordsReasonLabel(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRunFailure("load")
	c.RecordRunFailure("load")
	c.RecordRunFailure("store")

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	found := false
	for _, mf := range metrics {
		if mf.GetName() != "traveltide_batch_run_fail_total" {
			continue
		}
		found = true
		if len(mf.GetMetric()) != 2 {
			t.Fatalf("expected 2 labeled metrics, got %d", len(mf.GetMetric()))
		}
	}
	if !found {
		t.Error("traveltide_batch_run_fail_total metric not found")
	}
}

// TestRecordPerkAssigned_AddsPerPerkCount は特典別カウンタに付与数が加算されることを検証する。
func TestRecordPerkAssigned_AddsPerPerkCount(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordPerkAssigned("free_hotel_meals", 3)
	c.RecordPerkAssigned("free_hotel_meals", 2)
	c.RecordPerkAssigned("exclusive_discount", 10)

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	for _, mf := range metrics {
		if mf.GetName() != "traveltide_perk_assigned_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			val := m.GetCounter().GetValue()
			label := m.GetLabel()[0].GetValue()
			switch label {
			case "free_hotel_meals":
				if val != 5 {
					t.Errorf("perk_assigned_total{perk=free_hotel_meals} = %v, want 5", val)
				}
			case "exclusive_discount":
				if val != 10 {
					t.Errorf("perk_assigned_total{perk=exclusive_discount} = %v, want 10", val)
				}
			}
		}
	}
}

// TestSetEligibleUsers_SetsGauge は適格ユーザー数ゲージが上書きされることを検証する。
func TestSetEligibleUsers_SetsGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.SetEligibleUsers(100)
	c.SetEligibleUsers(42)

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	for _, mf := range metrics {
		if mf.GetName() != "traveltide_eligible_users" {
			continue
		}
		if val := mf.GetMetric()[0].GetGauge().GetValue(); val != 42 {
			t.Errorf("eligible_users = %v, want 42", val)
		}
	}
}

// TestRecordRowsWritten_AddsCount は書き込み行数が加算されることを検証する。
func TestRecordRowsWritten_AddsCount(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRowsWritten(10)
	c.RecordRowsWritten(5)

	if val := counterValue(t, reg, "traveltide_rows_written_total"); val != 15 {
		t.Errorf("rows_written_total = %v, want 15", val)
	}
}

// TestRecordRunDuration_ObservesHistogram は所要時間ヒストグラムに観測値が入ることを検証する。
func TestRecordRunDuration_ObservesHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRunDuration(2 * time.Second)

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	found := false
	for _, mf := range metrics {
		if mf.GetName() == "traveltide_batch_run_duration_seconds" {
			found = true
			if n := mf.GetMetric()[0].GetHistogram().GetSampleCount(); n != 1 {
				t.Errorf("sample count = %d, want 1", n)
			}
		}
	}
	if !found {
		t.Error("traveltide_batch_run_duration_seconds metric not found")
	}
}

// TestSetupMetricsRoute_ServesMetrics は/metricsパスでメトリクスが返ることを検証する。
func TestSetupMetricsRoute_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordRunSuccess()

	handler := SetupMetricsRoute(reg)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "traveltide_batch_run_success_total") {
		t.Error("response should contain traveltide_batch_run_success_total metric")
	}
}
