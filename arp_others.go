//go:build !linux

/*
File: arp_others.go
Version: 2.0.0
Description: No native neighbor read outside Linux; the command strategies are the only source.
*/

package main

func nativeNeighborStrategy(string) (Strategy, bool) {
	return Strategy{}, false
}
