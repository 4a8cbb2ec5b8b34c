package security

import "testing"

var testdata = []string{
	"Default Rules",
	"台灣麻將 16張",
	"house-rules_v2.1",
	"A",
}

var testdata2 = []string{
	"",
	"tab\there",
	"drop table;",
	"<script>",
	"0123456789012345678901234567890123456789012345678901234567890123456789",
}

func TestValidateName(t *testing.T) {
	for _, name := range testdata {
		if !ValidateName(name) {
			t.Errorf("should pass name: %s", name)
			t.Fail()
		}
	}

	for _, name := range testdata2 {
		if ValidateName(name) {
			t.Errorf("should not pass name: %s", name)
			t.Fail()
		}
	}
}

func TestValidateUUID(t *testing.T) {
	if !ValidateUUID("0b8e3c4a-5f2d-4c1b-9a7e-3d2f1e0c9b8a") {
		t.Fail()
	}
	for _, id := range []string{"", "0b8e3c4a5f2d4c1b9a7e3d2f1e0c9b8a", "0b8e3c4a-5f2d-4c1b-9a7e-3d2f1e0c9b8z"} {
		if ValidateUUID(id) {
			t.Errorf("should not pass uuid: %s", id)
		}
	}
}
