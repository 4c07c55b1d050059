package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mgnsk/stablelist"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	l := stablelist.From([]string{"quz", "foo", "bar"}, stablelist.WithLogger(logger))

	// Hold an iterator at "foo" while the list changes around it.
	it, err := l.Begin().Next()
	if err != nil {
		panic(err)
	}

	if err := it.InsertBefore("FOO", "BAR"); err != nil {
		panic(err)
	}

	v, _ := it.Get()
	fmt.Println(l.Flatten(), v)

	if _, err := it.Remove(); err != nil {
		panic(err)
	}

	// The iterator is dead now and reports it.
	if _, err := it.Next(); err != nil {
		fmt.Println(err)
	}

	if err := l.Close(); err != nil {
		panic(err)
	}
}
