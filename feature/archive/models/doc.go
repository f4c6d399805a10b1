// Package models defines the GORM models of the report archive tables.
package models
