package blocks

import "testing"

func TestBasicInfoRoundTrip(t *testing.T) {
	info := &BasicInfo{ModelName: "RT-5D", ModelID: "888"}
	b, err := EncodeBasicInfo(info)
	if err != nil {
		t.Fatalf("EncodeBasicInfo: %v", err)
	}
	if len(b) != BasicInfoBlockSize {
		t.Fatalf("len = %d, want %d", len(b), BasicInfoBlockSize)
	}
	if string(b[biOffModelID:biOffModelID+biModelIDLen]) != "00000888" {
		t.Fatalf("model ID bytes = %q, want zero-padded", b[biOffModelID:biOffModelID+biModelIDLen])
	}

	decoded, err := DecodeBasicInfo(b)
	if err != nil {
		t.Fatalf("DecodeBasicInfo: %v", err)
	}
	if decoded.ModelName != "RT-5D" {
		t.Fatalf("ModelName = %q", decoded.ModelName)
	}
	if decoded.ModelID != "00000888" {
		t.Fatalf("ModelID = %q, want 00000888", decoded.ModelID)
	}
}

func TestBasicInfoModelIDTooLong(t *testing.T) {
	info := &BasicInfo{ModelID: "123456789"}
	if _, err := EncodeBasicInfo(info); err == nil {
		t.Fatal("expected error for model ID longer than 8 digits")
	}
}

func TestBasicInfoUnprogrammedFallback(t *testing.T) {
	b := make([]byte, BasicInfoBlockSize)
	fillFF(b)

	decoded, err := DecodeBasicInfo(b)
	if err != nil {
		t.Fatalf("DecodeBasicInfo: %v", err)
	}
	if decoded.ModelName != "" || decoded.ModelID != "00000000" {
		t.Fatalf("decoded = %+v, want empty default", decoded)
	}
}
