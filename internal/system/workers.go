package system

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// RenderWorkers подбирает размер пула рендеринга. Кадр 1080x1920 RGBA
// весит ~8 МБ, и при большом пуле упереться можно не в ядра, а в
// память, поэтому число воркеров ограничивается и доступной RAM.
func RenderWorkers(frameBytes int) int {
	workers, err := cpu.Counts(true)
	if err != nil || workers < 1 {
		workers = runtime.NumCPU()
	}

	if vm, err := mem.VirtualMemory(); err == nil && frameBytes > 0 {
		// Половина свободной памяти — на кадры в полете (у каждого
		// воркера свой холст плюс буфер на переупорядочивание).
		byMemory := int(vm.Available / 2 / uint64(frameBytes) / 2)
		if byMemory < workers {
			workers = byMemory
		}
	}

	if workers < 1 {
		workers = 1
	}
	return workers
}
