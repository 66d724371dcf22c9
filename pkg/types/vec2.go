// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import (
	"fmt"
	"math"
)

// Vec2 二维向量（位置、缩放共用）
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// V 构造一个 Vec2
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add 向量加法
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 向量减法
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 标量乘法
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Mul 逐分量乘法（用于缩放倍率）
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Neg 取反
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Reciprocal 逐分量取倒数
// 分量为 0 时结果也为 0（表示该轴不做缩放变化），不产生 Inf
func (v Vec2) Reciprocal() Vec2 {
	r := Vec2{}
	if v.X != 0 {
		r.X = 1 / v.X
	}
	if v.Y != 0 {
		r.Y = 1 / v.Y
	}
	return r
}

// ApproxEqual 在容差 eps 内比较两个向量
func (v Vec2) ApproxEqual(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// String 返回 "(x, y)" 形式的字符串
func (v Vec2) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}
