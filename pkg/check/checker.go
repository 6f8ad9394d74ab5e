package check

// Checker is implemented by all probe types.
// Each probe inspects one aspect of the ML runtime environment and
// returns a Result. Probes never panic or propagate faults: any error
// discovered during inspection is converted into a failing Result.
//
// Implementations:
//   - pycheck.Check: verifies the Python interpreter and its version
//   - torchcheck.Check: verifies PyTorch and CUDA availability
//   - gpucheck.Check: queries NVML for GPU devices and memory
//   - envcheck.Check: validates environment variables
//   - envcheck.FileCheck: inspects a .env file
//   - modelcheck.Check: verifies a model artifact on disk
//   - depcheck.Check: verifies a Python module is importable
type Checker interface {
	Run() Result
}
