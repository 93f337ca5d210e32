// Package domain contains the core model for HOPE: BMI evaluation, saved
// evaluations and the reminder calendar.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// terminals, or the filesystem. Infra/adapters map into/from these types.
package domain
