package qpic

import (
	"context"
	"testing"

	errorslib "github.com/goliatone/go-errors"
)

func TestAsGoErrorMapping(t *testing.T) {
	cases := []struct {
		err      error
		category errorslib.Category
		code     string
	}{
		{NewError(KindValidation, "bad filename", nil), errorslib.CategoryValidation, "validation"},
		{NewError(KindMissingTool, "qpic not installed", nil), errorslib.CategoryOperation, "missing_tool"},
		{NewError(KindNotFound, "missing", nil), errorslib.CategoryNotFound, "not_found"},
		{context.DeadlineExceeded, errorslib.CategoryOperation, "timeout"},
		{context.Canceled, errorslib.CategoryOperation, "canceled"},
		{NewError(KindInternal, "boom", nil), errorslib.CategoryInternal, "internal"},
	}

	for _, tc := range cases {
		mapped := AsGoError(tc.err)
		if mapped == nil {
			t.Fatalf("expected mapping for %v", tc.err)
		}
		if mapped.Category != tc.category {
			t.Fatalf("expected category %s, got %s", tc.category, mapped.Category)
		}
		if mapped.TextCode != tc.code {
			t.Fatalf("expected text code %s, got %s", tc.code, mapped.TextCode)
		}
	}
}

func TestAsGoErrorNil(t *testing.T) {
	if AsGoError(nil) != nil {
		t.Fatalf("expected nil mapping")
	}
}

func TestKindFromError(t *testing.T) {
	if kind := KindFromError(NewError(KindMissingTool, "missing", nil)); kind != KindMissingTool {
		t.Fatalf("expected missing_tool kind, got %s", kind)
	}
	if kind := KindFromError(context.Canceled); kind != KindCanceled {
		t.Fatalf("expected canceled kind, got %s", kind)
	}
	if kind := KindFromError(nil); kind != "" {
		t.Fatalf("expected empty kind, got %s", kind)
	}
}
