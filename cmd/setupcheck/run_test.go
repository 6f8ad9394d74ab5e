package main

import (
	"github.com/m101tools/setupcheck/pkg/check"
)

type passingChecker struct{}

func (passingChecker) Run() check.Result {
	return check.Result{Name: "pass", Status: check.StatusOK}
}

type failingChecker struct{}

func (failingChecker) Run() check.Result {
	r := check.Result{Name: "fail"}
	return r.Failf("broken")
}
