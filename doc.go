// Package helpers collects small utilities used by the messaging client.
//
// The module is split into independent packages:
//
//   - field: typed extraction of values from decoded message payloads
//   - avatar: circular masking of contact avatar bitmaps
//   - notify: dismissal of a notification group summary once it is empty
//
// This root package holds the shared error vocabulary. Sentinel errors such as
// ErrMalformedField and ErrRecycled can be matched with errors.Is() no matter
// which package produced them:
//
//	v, err := field.Parse(payload, "dateCreated", field.Timestamp)
//	if errors.Is(err, helpers.ErrMalformedField) {
//	    // upstream sent something that is not epoch milliseconds
//	}
package helpers
