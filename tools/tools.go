package tools

import "strconv"

func PanicOnErr(err error) {
	if err != nil {
		panic(err)
	}
}

// UintToString 把无符号整数转为十进制字符串
func UintToString(n uint) string {
	return strconv.FormatUint(uint64(n), 10)
}
