package config

import (
	"reflect"
	"testing"
)

func TestStringListRoundTrip(t *testing.T) {
	list := StringList{"villa_front.jpg", "villa_pool.jpg"}

	value, err := list.Value()
	if err != nil {
		t.Fatalf("failed to serialize: %v", err)
	}

	var scanned StringList
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("failed to scan: %v", err)
	}
	if !reflect.DeepEqual(list, scanned) {
		t.Errorf("round trip changed the list: %v != %v", list, scanned)
	}
}

func TestStringListNil(t *testing.T) {
	var list StringList

	value, err := list.Value()
	if err != nil {
		t.Fatalf("failed to serialize nil list: %v", err)
	}
	if value != nil {
		t.Errorf("nil list must store NULL, got %v", value)
	}

	var scanned StringList
	if err := scanned.Scan(nil); err != nil {
		t.Errorf("scanning NULL must not fail: %v", err)
	}
	if scanned != nil {
		t.Errorf("scanning NULL must leave the list empty, got %v", scanned)
	}
}

func TestVendorSnapshotRoundTrip(t *testing.T) {
	snapshot := VendorSnapshot{
		StoreName:  "Villa World",
		StorePhone: "07123456789",
		Email:      "villa@example.com",
		StoreID:    "v1",
		Image:      "logo.png",
	}

	value, err := snapshot.Value()
	if err != nil {
		t.Fatalf("failed to serialize: %v", err)
	}

	var scanned VendorSnapshot
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("failed to scan: %v", err)
	}
	if scanned != snapshot {
		t.Errorf("round trip changed the snapshot: %+v != %+v", snapshot, scanned)
	}
}

func TestCartItemsRoundTrip(t *testing.T) {
	items := CartItems{
		{Slug: "sunset-villa", ProductName: "Sunset Villa", Qty: 1, Price: 250000},
		{Slug: "ocean-flat", ProductName: "Ocean Flat", Qty: 2, Price: 120000},
	}

	value, err := items.Value()
	if err != nil {
		t.Fatalf("failed to serialize: %v", err)
	}

	var scanned CartItems
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("failed to scan: %v", err)
	}
	if !reflect.DeepEqual(items, scanned) {
		t.Errorf("round trip changed the cart: %v != %v", items, scanned)
	}
}

func TestVendorRefsRoundTripFromString(t *testing.T) {
	refs := VendorRefs{
		{StoreID: "v1", StoreName: "Villa World", ProductName: "Sunset Villa"},
	}

	value, err := refs.Value()
	if err != nil {
		t.Fatalf("failed to serialize: %v", err)
	}

	// jsonb columns may scan back as string depending on the driver
	var scanned VendorRefs
	if err := scanned.Scan(string(value.([]byte))); err != nil {
		t.Fatalf("failed to scan from string: %v", err)
	}
	if !reflect.DeepEqual(refs, scanned) {
		t.Errorf("round trip changed the attribution list: %v != %v", refs, scanned)
	}
}

func TestRealEstateDetailsRoundTrip(t *testing.T) {
	details := RealEstateDetails{ProductBeds: 3, ProductBaths: 2, PropertyArea: 1500}

	value, err := details.Value()
	if err != nil {
		t.Fatalf("failed to serialize: %v", err)
	}

	var scanned RealEstateDetails
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("failed to scan: %v", err)
	}
	if scanned != details {
		t.Errorf("round trip changed the details: %+v != %+v", details, scanned)
	}
}
