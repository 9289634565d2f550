package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

// testSpec is a simple ValidatingSpec for testing
type testSpec struct {
	valid bool
}

func (s *testSpec) Validate() error {
	if !s.valid {
		return fmt.Errorf("spec is invalid")
	}
	return nil
}

func TestAsset_Validate(t *testing.T) {
	tests := map[string]struct {
		asset   Asset[*testSpec]
		expErrs []string
	}{
		"valid asset": {
			asset: Asset[*testSpec]{Version: 1, Identifier: "test-id", Spec: &testSpec{valid: true}},
		},
		"version not set": {
			asset:   Asset[*testSpec]{Version: 0, Identifier: "test-id", Spec: &testSpec{valid: true}},
			expErrs: []string{"version must be set"},
		},
		"empty identifier": {
			asset:   Asset[*testSpec]{Version: 1, Identifier: "", Spec: &testSpec{valid: true}},
			expErrs: []string{"id must be set"},
		},
		"identifier with underscore": {
			asset:   Asset[*testSpec]{Version: 1, Identifier: "test_id", Spec: &testSpec{valid: true}},
			expErrs: []string{"id must be alphanumeric"},
		},
		"nil spec": {
			asset:   Asset[*testSpec]{Version: 1, Identifier: "test-id"},
			expErrs: []string{"spec must be set"},
		},
		"invalid spec": {
			asset:   Asset[*testSpec]{Version: 1, Identifier: "test-id", Spec: &testSpec{valid: false}},
			expErrs: []string{"spec is invalid"},
		},
		"multiple errors": {
			asset: Asset[*testSpec]{Version: 0, Identifier: "", Spec: &testSpec{valid: false}},
			expErrs: []string{
				"version must be set",
				"id must be set",
				"spec is invalid",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.asset.Validate()

			if len(tt.expErrs) == 0 {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("expected errors %v, got nil", tt.expErrs)
			}

			errStr := err.Error()
			for _, e := range tt.expErrs {
				if !strings.Contains(errStr, e) {
					t.Errorf("error %q does not contain %q", errStr, e)
				}
			}
		})
	}
}

func TestSmartIdentifier_Resolve(t *testing.T) {
	store, err := NewMemoryStore(map[string]*testSpec{
		"known": {valid: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := map[string]struct {
		key    string
		expErr string
	}{
		"known id": {
			key: "known",
		},
		"unknown id": {
			key:    "missing",
			expErr: `testSpec "missing" not found`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			id := NewSmartIdentifier[*testSpec](tt.key)
			err := id.Resolve(store)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id.Get() == nil {
				t.Errorf("expected resolved value")
			}
			testutil.AssertEqual(t, "id", id.Id(), tt.key)
		})
	}
}

func TestSmartIdentifier_JSON(t *testing.T) {
	var holder struct {
		Ref SmartIdentifier[*testSpec] `json:"ref"`
	}

	err := json.Unmarshal([]byte(`{"ref":"tree"}`), &holder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "id", holder.Ref.Id(), "tree")

	out, err := json.Marshal(holder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "json", string(out), `{"ref":"tree"}`)
}

func TestSmartIdentifier_Validate(t *testing.T) {
	testutil.AssertErrorContains(t, SmartIdentifier[*testSpec]{}.Validate(), "testSpec identifier is required")

	if err := NewSmartIdentifier[*testSpec]("x").Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
