//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// //go:embed 只能嵌入当前包目录下的文件，构建前需要把配置复制到 mobile/data：
//
//	mkdir -p mobile/data && cp data/*.yaml mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/*.yaml
var dataFS embed.FS
