// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package proc

import (
	"bytes"
	"context"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// RunParallel runs the given commands in parallel. Output of each
// child is buffered and written to the given writers as a whole once
// that child exited, so outputs of different commands do not
// interleave. If there is only a single command, output is written
// unbuffered. It respects [runtime.GOMAXPROCS] and runs at most that
// many commands at once.
//
// The children run without stdin. All commands are run regardless of
// failures. The first error encountered is returned and follows the
// contract of [Command.Run].
func RunParallel(
	ctx context.Context,
	cmds []Command,
	stdout, stderr io.Writer,
) error {
	// Fastpath.
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0].Run(ctx, nil, stdout, stderr)
	}

	var (
		writers   sync.WaitGroup
		outStream = make(chan []byte)
		errStream = make(chan []byte)
	)

	addWriter := func(writer io.Writer, byteStream <-chan []byte) {
		writers.Add(1)

		go func() {
			defer writers.Done()

			for b := range byteStream {
				_, _ = writer.Write(b)
			}
		}()
	}

	addWriter(stdout, outStream)
	addWriter(stderr, errStream)

	eg := errgroup.Group{}
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for _, cmd := range cmds {
		eg.Go(func() error {
			var outBuf, errBuf bytes.Buffer

			err := cmd.Run(ctx, nil, &outBuf, &errBuf)

			outStream <- outBuf.Bytes()
			errStream <- errBuf.Bytes()

			return err
		})
	}

	err := eg.Wait()

	close(outStream)
	close(errStream)
	writers.Wait()

	return err
}
