// Package models contains the GORM persistence models and their mapping to
// and from domain entities. Domain packages never depend on this package;
// the conversion always happens inside the repositories.
package models
