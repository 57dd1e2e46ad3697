// Package platform provides cross-platform filesystem helpers for permission
// and timestamp handling. Permission bits are applied on Unix systems only;
// Windows has no equivalent and the calls become no-ops there.
package platform
