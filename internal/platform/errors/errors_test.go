package errors

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCCode(t *testing.T) {
	tests := []struct {
		code Code
		want codes.Code
	}{
		{CodeTokenInvalid, codes.Unauthenticated},
		{CodeProviderFailure, codes.Internal},
		{CodeStoreFailure, codes.Internal},
		{CodeConfigInvalid, codes.InvalidArgument},
		{CodeUnknown, codes.Internal},
		{Code("something-else"), codes.Internal},
	}

	for _, tc := range tests {
		t.Run(string(tc.code), func(t *testing.T) {
			if got := tc.code.GRPCCode(); got != tc.want {
				t.Fatalf("GRPCCode() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", New(CodeTokenInvalid, "bad token"))
	if got := GetCode(wrapped); got != CodeTokenInvalid {
		t.Fatalf("GetCode(wrapped) = %q", got)
	}
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Fatalf("GetCode(plain) = %q", got)
	}
	if got := GetCode(nil); got != CodeUnknown {
		t.Fatalf("GetCode(nil) = %q", got)
	}
}

func TestErrorIsMatchesByCode(t *testing.T) {
	err := Wrap(CodeStoreFailure, "write failed", errors.New("io timeout"))
	if !errors.Is(err, New(CodeStoreFailure, "")) {
		t.Fatal("expected same-code errors to match")
	}
	if errors.Is(err, New(CodeTokenInvalid, "")) {
		t.Fatal("expected different-code errors not to match")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("io timeout")
	err := Wrap(CodeStoreFailure, "write failed", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be reachable via errors.Is")
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    codes.Code
		wantMessage string
	}{
		{
			name:        "domain error",
			err:         New(CodeTokenInvalid, "invalid or expired refresh token"),
			wantCode:    codes.Unauthenticated,
			wantMessage: "invalid or expired refresh token",
		},
		{
			name:        "wrapped domain error",
			err:         fmt.Errorf("handler: %w", New(CodeProviderFailure, "token exchange failed")),
			wantCode:    codes.Internal,
			wantMessage: "token exchange failed",
		},
		{
			name:        "unknown error is masked",
			err:         errors.New("redis: connection pool exhausted"),
			wantCode:    codes.Internal,
			wantMessage: "internal error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := status.Convert(HandleError(tc.err))
			if st.Code() != tc.wantCode {
				t.Fatalf("code = %v, want %v", st.Code(), tc.wantCode)
			}
			if st.Message() != tc.wantMessage {
				t.Fatalf("message = %q, want %q", st.Message(), tc.wantMessage)
			}
		})
	}
}

func TestToGRPCStatusAttachesErrorInfo(t *testing.T) {
	st := status.Convert(New(CodeStoreFailure, "token store unavailable").ToGRPCStatus())

	if len(st.Details()) != 1 {
		t.Fatalf("expected 1 detail, got %d", len(st.Details()))
	}
	info, ok := st.Details()[0].(*errdetails.ErrorInfo)
	if !ok {
		t.Fatalf("expected ErrorInfo detail, got %T", st.Details()[0])
	}
	if info.GetReason() != string(CodeStoreFailure) {
		t.Fatalf("reason = %q, want %q", info.GetReason(), CodeStoreFailure)
	}
	if info.GetDomain() != Domain {
		t.Fatalf("domain = %q, want %q", info.GetDomain(), Domain)
	}
}
