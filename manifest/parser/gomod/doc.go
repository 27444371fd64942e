// Package gomod reads a project name from a go.mod file.
//
// The module path becomes the manifest name. go.mod carries no version, so the
// version is left empty and callers asking for an automatic version get none.
package gomod
