// Package scopes translates between the console's scope keys and the
// backend's scope names. The mapping is fixed; unknown keys and names are
// ignored on both sides so the two vocabularies can evolve independently.
package scopes

import "github.com/tigaron/partner-admin/pkg/gatewaysdk"

// Console scope keys.
const (
	KeyLihatNama              = "lihat_nama"
	KeyLihatTanggalLahir      = "lihat_tanggal_lahir"
	KeyLihatStatusKepesertaan = "lihat_status_kepesertaan"
	KeyLihatAlamat            = "lihat_alamat"
)

// mapping is the console-key to backend-name table.
var mapping = map[string]string{
	KeyLihatNama:              "name",
	KeyLihatTanggalLahir:      "tanggal_lahir",
	KeyLihatStatusKepesertaan: "status_bpjs",
	KeyLihatAlamat:            "alamat",
}

// keyOrder fixes the iteration order so translated output is deterministic.
var keyOrder = []string{
	KeyLihatNama,
	KeyLihatTanggalLahir,
	KeyLihatStatusKepesertaan,
	KeyLihatAlamat,
}

// reverse is the backend-name to console-key table.
var reverse = func() map[string]string {
	m := make(map[string]string, len(mapping))
	for k, v := range mapping {
		m[v] = k
	}
	return m
}()

// Keys returns all console scope keys in canonical order.
func Keys() []string {
	out := make([]string, len(keyOrder))
	copy(out, keyOrder)
	return out
}

// Defaults returns the scope set preselected for new companies.
func Defaults() map[string]bool {
	return map[string]bool{
		KeyLihatNama:              true,
		KeyLihatTanggalLahir:      true,
		KeyLihatStatusKepesertaan: true,
		KeyLihatAlamat:            false,
	}
}

// ToBackend converts a console scope set to the list of enabled backend
// scope names. Disabled and unknown keys are dropped.
func ToBackend(console map[string]bool) []string {
	out := []string{}
	for _, key := range keyOrder {
		enabled, ok := console[key]
		if !ok || !enabled {
			continue
		}
		out = append(out, mapping[key])
	}
	return out
}

// FromBackend converts backend scope items to a console scope set. Every
// console key is present in the result; names the console does not know
// are ignored.
func FromBackend(items []gatewaysdk.ScopeItem) map[string]bool {
	out := make(map[string]bool, len(keyOrder))
	for _, key := range keyOrder {
		out[key] = false
	}

	for _, item := range items {
		key, ok := reverse[item.ScopeName]
		if !ok {
			continue
		}
		out[key] = item.Enabled
	}

	return out
}

// ToUpdatePayload converts a console scope set to the backend's update
// shape: one item per known key present in the input, enabled or not.
func ToUpdatePayload(console map[string]bool) []gatewaysdk.ScopeItem {
	out := []gatewaysdk.ScopeItem{}
	for _, key := range keyOrder {
		enabled, ok := console[key]
		if !ok {
			continue
		}
		out = append(out, gatewaysdk.ScopeItem{
			ScopeName: mapping[key],
			Enabled:   enabled,
		})
	}
	return out
}
