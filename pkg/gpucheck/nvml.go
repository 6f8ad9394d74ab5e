package gpucheck

import "github.com/NVIDIA/go-nvml/pkg/nvml"

// Device abstracts per-device NVML queries for testability.
type Device interface {
	GetName() (string, nvml.Return)
	GetMemoryInfo() (nvml.Memory, nvml.Return)
}

// NVML abstracts the NVML library for testability.
type NVML interface {
	Init() nvml.Return
	Shutdown() nvml.Return
	DeviceGetCount() (int, nvml.Return)
	DeviceGetHandleByIndex(index int) (Device, nvml.Return)
	SystemGetDriverVersion() (string, nvml.Return)
}

// RealNVML implements NVML using the actual library. NVML is loaded at
// runtime, so Init fails cleanly on hosts without an NVIDIA driver.
type RealNVML struct{}

func (r *RealNVML) Init() nvml.Return {
	return nvml.Init()
}

func (r *RealNVML) Shutdown() nvml.Return {
	return nvml.Shutdown()
}

func (r *RealNVML) DeviceGetCount() (int, nvml.Return) {
	return nvml.DeviceGetCount()
}

func (r *RealNVML) DeviceGetHandleByIndex(index int) (Device, nvml.Return) {
	device, ret := nvml.DeviceGetHandleByIndex(index)
	if ret != nvml.SUCCESS {
		return nil, ret
	}
	return deviceWrapper{device: device}, ret
}

func (r *RealNVML) SystemGetDriverVersion() (string, nvml.Return) {
	return nvml.SystemGetDriverVersion()
}

// deviceWrapper adapts nvml.Device to the Device interface.
type deviceWrapper struct {
	device nvml.Device
}

func (w deviceWrapper) GetName() (string, nvml.Return) {
	return w.device.GetName()
}

func (w deviceWrapper) GetMemoryInfo() (nvml.Memory, nvml.Return) {
	return w.device.GetMemoryInfo()
}

// MockDevice is a test double for Device.
type MockDevice struct {
	Name   string
	Memory nvml.Memory
}

func (m *MockDevice) GetName() (string, nvml.Return) {
	return m.Name, nvml.SUCCESS
}

func (m *MockDevice) GetMemoryInfo() (nvml.Memory, nvml.Return) {
	return m.Memory, nvml.SUCCESS
}

// MockNVML is a test double for NVML.
type MockNVML struct {
	InitReturn    nvml.Return
	DriverVersion string
	Devices       []Device
	ShutdownCalls int
}

func (m *MockNVML) Init() nvml.Return {
	return m.InitReturn
}

func (m *MockNVML) Shutdown() nvml.Return {
	m.ShutdownCalls++
	return nvml.SUCCESS
}

func (m *MockNVML) DeviceGetCount() (int, nvml.Return) {
	return len(m.Devices), nvml.SUCCESS
}

func (m *MockNVML) DeviceGetHandleByIndex(index int) (Device, nvml.Return) {
	if index < 0 || index >= len(m.Devices) {
		return nil, nvml.ERROR_INVALID_ARGUMENT
	}
	return m.Devices[index], nvml.SUCCESS
}

func (m *MockNVML) SystemGetDriverVersion() (string, nvml.Return) {
	if m.DriverVersion == "" {
		return "", nvml.ERROR_NOT_SUPPORTED
	}
	return m.DriverVersion, nvml.SUCCESS
}
