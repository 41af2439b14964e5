package chat

import (
	"math/rand/v2"
	"time"

	"github.com/lwmacct/260824-go-app-llm-mock-api/pkg/mockapi"
)

// ═══════════════════════════════════════════════════════════════════════════
// 延迟/故障模拟
// ═══════════════════════════════════════════════════════════════════════════

// DrawLatency 在区间内均匀抽取整数延迟（毫秒）
//
// 区间修正规则（容忍任意顺序的输入）：
//
//	low  = max(0, minMS)
//	high = max(minMS, maxMS)
//	high < low 时取 high = low
//
// 注意 high 用的是两个原始输入的较大值，不是修正后的 low。
// math/rand/v2 的包级源可安全用于并发请求。
func DrawLatency(minMS, maxMS int) int {
	low := minMS
	if low < 0 {
		low = 0
	}
	high := maxMS
	if minMS > high {
		high = minMS
	}
	if high < low {
		high = low
	}
	return low + rand.IntN(high-low+1)
}

// Simulate 模拟一次模型调用的延迟与故障
//
// 抽取延迟并真实休眠。休眠不可取消，simulateError 为 true 时
// 错误在延迟完整结束后才返回；非错误路径返回抽取到的延迟值。
func Simulate(minMS, maxMS int, simulateError bool, provider, model string) (int, error) {
	latency := DrawLatency(minMS, maxMS)
	time.Sleep(time.Duration(latency) * time.Millisecond)

	if simulateError {
		return 0, mockapi.NewSimulatedError(provider, model)
	}
	return latency, nil
}
