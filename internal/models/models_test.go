package models

import (
	"encoding/json"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestPaidStatusStoredAsBooleanOrPending(t *testing.T) {
	raw, err := bson.Marshal(Booking{Email: "a@b.c", Paid: PaidTrue})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc["paid"] != true {
		t.Fatalf("expected paid stored as boolean true, got %#v", doc["paid"])
	}

	raw, _ = bson.Marshal(Booking{Email: "a@b.c", Paid: PaidPending})
	doc = bson.M{}
	_ = bson.Unmarshal(raw, &doc)
	if doc["paid"] != "pending" {
		t.Fatalf("expected paid stored as \"pending\", got %#v", doc["paid"])
	}
}

func TestPaidStatusOmittedWhenUnset(t *testing.T) {
	raw, err := bson.Marshal(Booking{Email: "a@b.c"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc bson.M
	_ = bson.Unmarshal(raw, &doc)
	if _, ok := doc["paid"]; ok {
		t.Fatalf("unset paid should not be stored, got %#v", doc["paid"])
	}

	out, _ := json.Marshal(Booking{Email: "a@b.c"})
	if strings.Contains(string(out), `"paid"`) {
		t.Fatalf("unset paid should not be rendered: %s", out)
	}
}

func TestPaidStatusDecodesLegacyDocuments(t *testing.T) {
	raw, _ := bson.Marshal(bson.M{"email": "a@b.c", "paid": true, "transactionId": "pi_1"})
	var b Booking
	if err := bson.Unmarshal(raw, &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if b.Paid != PaidTrue || b.TransactionID != "pi_1" {
		t.Fatalf("unexpected booking %+v", b)
	}

	out, _ := json.Marshal(b)
	if !strings.Contains(string(out), `"paid":true`) {
		t.Fatalf("expected paid rendered as true: %s", out)
	}
}

func TestPaidStatusRejectsUnknownString(t *testing.T) {
	var p PaidStatus
	if err := json.Unmarshal([]byte(`"maybe"`), &p); err == nil {
		t.Fatal("expected an error for an unknown paid status")
	}
}

func TestEffectiveRole(t *testing.T) {
	var nobody *User
	if got := nobody.EffectiveRole(); got != RoleGuest {
		t.Fatalf("missing user: got %q", got)
	}
	if got := (&User{Email: "a@b.c"}).EffectiveRole(); got != RoleUser {
		t.Fatalf("user without role: got %q", got)
	}
	if !(&User{Role: RoleAdmin}).IsAdmin() {
		t.Fatal("admin not recognised")
	}
	if (&User{Role: "superuser"}).IsAdmin() {
		t.Fatal("unknown role must not grant admin")
	}
	if _, err := ParseRole("root"); err == nil {
		t.Fatal("expected ParseRole to reject an unknown role")
	}
}

func TestPaymentMethodBookingStatus(t *testing.T) {
	if s, ok := PaymentCard.BookingStatus(); !ok || s != PaidTrue {
		t.Fatalf("card: got %q %v", s, ok)
	}
	if s, ok := PaymentBkash.BookingStatus(); !ok || s != PaidPending {
		t.Fatalf("bkash: got %q %v", s, ok)
	}
	if _, ok := PaymentMethod("cash").BookingStatus(); ok {
		t.Fatal("cash should not be accepted")
	}
}
