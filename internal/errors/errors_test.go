package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestE(t *testing.T) {
	underlying := stderrors.New("connection refused")
	err := E(Op("dealroom.ListDeals"), KindNetwork, "failed to fetch deal catalog", underlying)

	msg := err.Error()
	if !strings.Contains(msg, "dealroom.ListDeals") {
		t.Errorf("error message missing op: %q", msg)
	}
	if !strings.Contains(msg, "failed to fetch deal catalog") {
		t.Errorf("error message missing context: %q", msg)
	}
	if !strings.Contains(msg, "connection refused") {
		t.Errorf("error message missing underlying error: %q", msg)
	}

	if !stderrors.Is(err, underlying) {
		t.Error("expected errors.Is to find the underlying error")
	}
}

func TestEWithoutUnderlying(t *testing.T) {
	err := E(Op("dealroom.Ask"), KindRemote, "deal service returned status 502")
	if err.Error() == "" {
		t.Error("expected non-empty error message")
	}
	if !strings.Contains(err.Error(), "status 502") {
		t.Errorf("error message missing context: %q", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := E(Op("config.Load"), KindConfig, stderrors.New("bad json"))

	if !Is(err, KindConfig) {
		t.Error("expected Is(err, KindConfig) to be true")
	}
	if Is(err, KindNetwork) {
		t.Error("expected Is(err, KindNetwork) to be false")
	}
	if Is(stderrors.New("plain"), KindConfig) {
		t.Error("expected Is on a plain error to be false")
	}
}

func TestGetKind(t *testing.T) {
	if k := GetKind(DealsStatusFailed(503)); k != KindRemote {
		t.Errorf("expected KindRemote, got %v", k)
	}
	if k := GetKind(DealsFetchFailed(stderrors.New("dial tcp"))); k != KindNetwork {
		t.Errorf("expected KindNetwork, got %v", k)
	}
	if k := GetKind(stderrors.New("plain")); k != KindUnknown {
		t.Errorf("expected KindUnknown for plain error, got %v", k)
	}
}

func TestGetKindWrapped(t *testing.T) {
	inner := DealSelectFailed("acme", stderrors.New("dial tcp"))
	wrapped := E(Op("app.selectDeal"), inner)
	// The outer error's kind wins; unwrapping stops at the first Error
	if k := GetKind(wrapped); k != KindUnknown {
		t.Errorf("expected outer KindUnknown, got %v", k)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNotFound, "not found"},
		{KindNetwork, "network error"},
		{KindRemote, "remote service error"},
		{KindDecode, "decode error"},
		{KindConfig, "configuration error"},
		{KindIO, "I/O error"},
		{KindUnknown, "unknown error"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
