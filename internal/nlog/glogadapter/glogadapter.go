// Package glogadapter wires github.com/golang/glog (the logging
// library used by jyane-jnes's bus and UI code) in as a concrete
// nlog.Logger. It lives in its own package so that importing the
// nlog.Logger interface never drags glog into the core's dependency
// graph — only cmd/gintendo imports this package.
package glogadapter

import (
	"github.com/golang/glog"

	"github.com/bdwalton/gintendo/internal/nlog"
)

type adapter struct{}

// New returns an nlog.Logger backed by glog.
func New() nlog.Logger { return adapter{} }

func (adapter) Infof(format string, args ...any)  { glog.Infof(format, args...) }
func (adapter) Errorf(format string, args ...any) { glog.Errorf(format, args...) }
