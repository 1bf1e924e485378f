// Package hostinfo detects report environment values from the machine
// jobsummary runs on.
package hostinfo

import (
	"context"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"

	"github.com/AndreyAkinshin/jobsummary/internal/report"
)

// Probe queries the host. Each function may be replaced in tests.
type Probe struct {
	// Platform returns the OS distribution name, family and version.
	Platform func(ctx context.Context) (platform, family, version string, err error)
	// CPUBrand returns the processor brand string reported by CPUID.
	CPUBrand func() string
	// CPUInfo is consulted when CPUID reports no brand, as on most ARM hosts.
	CPUInfo func(ctx context.Context) ([]cpu.InfoStat, error)
}

// DefaultProbe returns a Probe backed by gopsutil and cpuid.
func DefaultProbe() Probe {
	return Probe{
		Platform: host.PlatformInformationWithContext,
		CPUBrand: func() string { return cpuid.CPU.BrandName },
		CPUInfo:  cpu.InfoWithContext,
	}
}

// Detect returns the OS and CPU model of the current host using DefaultProbe.
func Detect(ctx context.Context) report.Environment {
	return DefaultProbe().Detect(ctx)
}

// Detect returns the OS and CPU model reported by p. Compiler and CMake
// versions are never detected. Values that cannot be determined are blank.
func (p Probe) Detect(ctx context.Context) report.Environment {
	return report.Environment{
		OS:       p.os(ctx),
		CPUModel: p.cpuModel(ctx),
	}
}

func (p Probe) os(ctx context.Context) string {
	if p.Platform == nil {
		return runtime.GOOS
	}
	platform, family, version, err := p.Platform(ctx)
	if err != nil {
		return runtime.GOOS
	}

	name := platform
	if name == "" {
		name = family
	}
	if name == "" {
		name = runtime.GOOS
	}
	return strings.TrimSpace(name + " " + version)
}

func (p Probe) cpuModel(ctx context.Context) string {
	if p.CPUBrand != nil {
		if brand := strings.TrimSpace(p.CPUBrand()); brand != "" {
			return brand
		}
	}
	if p.CPUInfo == nil {
		return ""
	}
	infos, err := p.CPUInfo(ctx)
	if err != nil {
		return ""
	}
	for _, info := range infos {
		if model := strings.TrimSpace(info.ModelName); model != "" {
			return model
		}
	}
	return ""
}
