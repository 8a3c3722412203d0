// Package dice 实现骰子记法的解析与掷骰
// 无状态纯计算，可以并发调用，结果不落库，由调用方决定是否写入会话日志
package dice

import (
	"math/rand"
	"regexp"
	"strconv"

	"github.com/questforge/tabletop-server/internal/errors"
)

// 骰子数量与面数的合法范围
const (
	MinCount = 1
	MaxCount = 100
	MinSides = 1
	MaxSides = 1000
)

// 记法格式: NdS，N个S面骰，如 1d20、3d6
var notationPattern = regexp.MustCompile(`^(\d+)d(\d+)$`)

// Result 一次掷骰的结果
// Total 是逐骰点数之和，FinalTotal 是加上调整值后的最终结果
type Result struct {
	Dice       string  `json:"dice"`
	Rolls      []int   `json:"rolls"`
	Total      int     `json:"total"`
	Modifier   int     `json:"modifier"`
	FinalTotal int     `json:"final_total"`
	RollType   *string `json:"roll_type"`
}

// Parse 解析骰子记法，返回骰子数量和面数
// 格式不匹配返回 ErrInvalidNotation，数值越界返回 ErrDiceOutOfRange
func Parse(notation string) (count, sides int, err error) {
	m := notationPattern.FindStringSubmatch(notation)
	if m == nil {
		return 0, 0, errors.Newf(errors.ErrInvalidNotation, "记法必须形如 NdS: %q", notation)
	}

	// 正则保证是纯数字，超长数字串按越界处理
	count, cerr := strconv.Atoi(m[1])
	sides, serr := strconv.Atoi(m[2])
	if cerr != nil || serr != nil {
		return 0, 0, errors.Newf(errors.ErrDiceOutOfRange, "数值过大: %q", notation)
	}

	if count < MinCount || count > MaxCount {
		return 0, 0, errors.Newf(errors.ErrDiceOutOfRange, "骰子数量必须在 %d-%d 之间: %d", MinCount, MaxCount, count)
	}
	if sides < MinSides || sides > MaxSides {
		return 0, 0, errors.Newf(errors.ErrDiceOutOfRange, "骰子面数必须在 %d-%d 之间: %d", MinSides, MaxSides, sides)
	}

	return count, sides, nil
}

// Roll 按记法掷骰并应用调整值
// rollType 为空表示未指定掷骰类型，结果中记为 null
func Roll(notation string, modifier int, rollType string) (*Result, error) {
	count, sides, err := Parse(notation)
	if err != nil {
		return nil, err
	}

	rolls := make([]int, count)
	total := 0
	for i := range rolls {
		rolls[i] = rand.Intn(sides) + 1
		total += rolls[i]
	}

	result := &Result{
		Dice:       notation,
		Rolls:      rolls,
		Total:      total,
		Modifier:   modifier,
		FinalTotal: total + modifier,
	}
	if rollType != "" {
		result.RollType = &rollType
	}

	return result, nil
}
