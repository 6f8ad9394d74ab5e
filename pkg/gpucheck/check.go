// Package gpucheck probes NVIDIA GPUs through NVML: device presence,
// driver version, and per-device memory.
package gpucheck

import (
	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"github.com/m101tools/setupcheck/pkg/check"
)

// Check verifies that at least one GPU is present and queryable.
type Check struct {
	MinFreeMemory uint64 // minimum free memory in bytes on some device (0 = no threshold)
	NVML          NVML   // injected for testing
}

// Run executes the GPU check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "gpu",
	}

	lib := c.NVML
	if lib == nil {
		lib = &RealNVML{}
	}

	if ret := lib.Init(); ret != nvml.SUCCESS {
		return result.Failf("NVML unavailable: %s", nvml.ErrorString(ret))
	}
	defer lib.Shutdown()

	if driver, ret := lib.SystemGetDriverVersion(); ret == nvml.SUCCESS {
		result.AddDetailf("driver: %s", driver)
	}

	count, ret := lib.DeviceGetCount()
	if ret != nvml.SUCCESS {
		return result.Failf("device count query failed: %s", nvml.ErrorString(ret))
	}
	if count == 0 {
		return result.Failf("no GPU devices found")
	}

	result.AddDetailf("devices: %d", count)

	queried := 0
	var maxFree uint64
	for i := 0; i < count; i++ {
		device, ret := lib.DeviceGetHandleByIndex(i)
		if ret != nvml.SUCCESS {
			result.AddDetailf("device %d: handle query failed: %s", i, nvml.ErrorString(ret))
			continue
		}

		name := "unknown"
		if n, ret := device.GetName(); ret == nvml.SUCCESS {
			name = n
		}

		mem, ret := device.GetMemoryInfo()
		if ret != nvml.SUCCESS {
			result.AddDetailf("device %d: %s (memory query failed: %s)", i, name, nvml.ErrorString(ret))
			continue
		}

		result.AddDetailf("device %d: %s, %s free / %s total", i, name, FormatSize(mem.Free), FormatSize(mem.Total))
		if mem.Free > maxFree {
			maxFree = mem.Free
		}
		queried++
	}

	if queried == 0 {
		return result.Failf("no GPU device was queryable")
	}

	if c.MinFreeMemory > 0 && maxFree < c.MinFreeMemory {
		return result.Failf("free GPU memory %s < required %s", FormatSize(maxFree), FormatSize(c.MinFreeMemory))
	}

	result.Status = check.StatusOK
	return result
}
