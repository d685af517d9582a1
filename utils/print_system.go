package utils

import (
	"net"

	"plants/global"
)

// PrintSystem 打印系统信息
func PrintSystem() {
	ip := global.Config.System.Host
	port := global.Config.System.Port

	if ip == "0.0.0.0" {
		for _, i := range GetIPList() {
			global.Log.Infof("plants_server 运行在： http://%s:%d/api", i, port)
		}
	} else {
		global.Log.Infof("plants_server 运行在： http://%s:%d/api", ip, port)
	}
}

// GetIPList 获取本机全部IPv4地址
func GetIPList() []string {
	var ipList []string
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return ipList
	}
	for _, addr := range addrs {
		if ipNet, ok := addr.(*net.IPNet); ok && !ipNet.IP.IsLoopback() {
			if ipNet.IP.To4() != nil {
				ipList = append(ipList, ipNet.IP.String())
			}
		}
	}
	return ipList
}
