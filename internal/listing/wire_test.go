package listing

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/muurk/travelist/internal/catalog"
)

func TestEncodeState_Success(t *testing.T) {
	data, err := EncodeState(successAt("South Korea", 1))
	if err != nil {
		t.Fatalf("EncodeState() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if raw["type"] != TypeSuccess {
		t.Errorf("type = %v, want success", raw["type"])
	}
	if raw["selected_country"] != "South Korea" {
		t.Errorf("selected_country = %v", raw["selected_country"])
	}
	if raw["selected_item_index"] != float64(1) {
		t.Errorf("selected_item_index = %v", raw["selected_item_index"])
	}

	got, err := DecodeState(data)
	if err != nil {
		t.Fatalf("DecodeState() error = %v", err)
	}
	if !reflect.DeepEqual(got, State(successAt("South Korea", 1))) {
		t.Errorf("DecodeState() = %v", got)
	}
}

func TestEncodeState_IndexZeroIsPresent(t *testing.T) {
	data, _ := EncodeState(successAt("Japan", 0))
	if !strings.Contains(string(data), `"selected_item_index":0`) {
		t.Errorf("index 0 should be encoded explicitly: %s", data)
	}
}

func TestEncodeState_LoadingAndError(t *testing.T) {
	data, err := EncodeState(Loading{})
	if err != nil || string(data) != `{"type":"loading"}` {
		t.Errorf("EncodeState(Loading) = %s, %v", data, err)
	}

	data, err = EncodeState(Error{Err: errors.New("catalog missing")})
	if err != nil {
		t.Fatalf("EncodeState(Error) error = %v", err)
	}
	st, err := DecodeState(data)
	if err != nil {
		t.Fatalf("DecodeState() error = %v", err)
	}
	if e, ok := st.(Error); !ok || e.Err.Error() != "catalog missing" {
		t.Errorf("DecodeState() = %v", st)
	}
}

func TestDecodeState_Malformed(t *testing.T) {
	tests := []string{
		`not json`,
		`{"type":"party"}`,
		`{"type":"success","countries":[],"selected_country":"Japan"}`,
	}
	for _, in := range tests {
		if _, err := DecodeState([]byte(in)); !errors.Is(err, ErrMalformed) {
			t.Errorf("DecodeState(%s) error = %v, want ErrMalformed", in, err)
		}
	}
}

func TestActionEnvelopes(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		wire   string
	}{
		{
			name:   "select country",
			action: SelectCountryNamed("Japan"),
			wire:   `{"type":"select_country","country":"Japan"}`,
		},
		{
			name:   "move to index zero",
			action: MoveToIndex{Index: 0},
			wire:   `{"type":"move_to_index","index":0}`,
		},
		{
			name:   "item swiped",
			action: ItemSwiped{Place: catalog.TouristPlace{Name: "Tokyo 1"}, Index: 1},
			wire:   `{"type":"item_swiped","place":"Tokyo 1","index":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeAction(tt.action)
			if err != nil {
				t.Fatalf("EncodeAction() error = %v", err)
			}
			if string(data) != tt.wire {
				t.Errorf("EncodeAction() = %s, want %s", data, tt.wire)
			}

			got, err := DecodeAction([]byte(tt.wire))
			if err != nil {
				t.Fatalf("DecodeAction() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.action) {
				t.Errorf("DecodeAction() = %#v, want %#v", got, tt.action)
			}
		})
	}
}

func TestDecodeAction_Errors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{`{"type":"teleport"}`, ErrUnknownAction},
		{`{"type":"select_country"}`, ErrMalformed},
		{`{"type":"move_to_index"}`, ErrMalformed},
		{`{"type":"item_swiped","place":"Tokyo"}`, ErrMalformed},
		{`[1,2]`, ErrMalformed},
	}

	for _, tt := range tests {
		if _, err := DecodeAction([]byte(tt.in)); !errors.Is(err, tt.want) {
			t.Errorf("DecodeAction(%s) error = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestEncodeAction_Unknown(t *testing.T) {
	if _, err := EncodeAction(bogusAction{}); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("EncodeAction(bogus) error = %v", err)
	}
}
