// Package whitelist keeps the client addresses allowed to change templates
// and history. An empty list allows everyone.
package whitelist

import (
	"net"
	"regexp"
	"sort"
	"sync"
)

var (
	lock sync.RWMutex
	ips  = map[string]*regexp.Regexp{}
)

// Setup replaces the list. Each entry is a regular expression matched
// against the whole client ip.
func Setup(list []string) error {
	next := make(map[string]*regexp.Regexp, len(list))
	for _, ip := range list {
		re, err := regexp.Compile("^(?:" + ip + ")$")
		if err != nil {
			return err
		}
		next[ip] = re
	}

	lock.Lock()
	defer lock.Unlock()
	ips = next
	return nil
}

func Enabled() bool {
	lock.RLock()
	defer lock.RUnlock()

	return len(ips) > 0
}

//VerifyIP check the ip is a legal ip or not
func VerifyIP(ip string) bool {
	lock.RLock()
	defer lock.RUnlock()

	for _, r := range ips {
		if r.MatchString(ip) {
			return true
		}
	}
	return false
}

// VerifyAddr checks the host part of a remote address such as
// "10.0.0.2:51234".
func VerifyAddr(addr string) bool {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}
	return VerifyIP(host)
}

// IPList returns the installed patterns, sorted.
func IPList() []string {
	lock.RLock()
	defer lock.RUnlock()

	list := []string{}
	for ip := range ips {
		list = append(list, ip)
	}
	sort.Strings(list)

	return list
}

func ClearIPList() {
	lock.Lock()
	defer lock.Unlock()

	ips = map[string]*regexp.Regexp{}
}
