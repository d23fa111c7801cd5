// Package catalog provides the TORI catalog aggregate and its semantic
// validation rules: uniqueness per element kind and required scalar fields.
package catalog
