// Package uint128 提供 128 位无符号整数运算，作为 IPv6 地址规范整数的底层表示。
//
// # 核心功能
//
//   - 大端字节序与 64 位字的相互转换（From16 / As16 / From64）
//   - 环绕算术（Add / Sub / Add64 / Sub64，模 2^128）
//   - 位运算（And / Or / Xor / Not / Lsh / Rsh）
//   - 三值比较（Cmp）
//
// # 设计决策
//
//   - 零值即数值 0，结构体可比较，可直接用作 map 键。
//   - 所有运算返回新值，不修改接收者。
//   - 移位计数超出位宽时结果为 0，与 Go 对无符号整数的移位语义一致。
//   - 仅服务于包内地址类型，公开 API 一律以 [16]byte、uint64 或 *big.Int 交互。
package uint128
