//go:build mobile

// 移动端资源嵌入声明
//
// make prepare-mobile 会把 data/actions 复制到此目录。
package mobile

import "embed"

//go:embed data/actions
var dataFS embed.FS
