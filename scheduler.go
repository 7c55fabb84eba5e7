// SPDX-License-Identifier: MIT
// Source: github.com/wareya/LOH

package loh

import "golang.org/x/sync/errgroup"

// encodeChunksParallel is the fork-join scheduler from §5: each chunk is
// independent (its own hash index, its own Huffman tables), so chunks run
// concurrently up to threads at a time and are collected into a
// pre-sized slice indexed by chunk number. The container is assembled
// from that slice in chunk order afterward, regardless of which chunk's
// goroutine happened to finish first — this is the direct goroutine
// analogue of the source's per-chunk pthread_create/pthread_join pairs.
func encodeChunksParallel(data []byte, cfg Config, chunkSize, chunkCount, threads int) []chunkResult {
	results := make([]chunkResult, chunkCount)
	if chunkCount == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(threads)
	for i := 0; i < chunkCount; i++ {
		i := i
		g.Go(func() error {
			start := i * chunkSize
			end := start + chunkSize
			if end > len(data) {
				end = len(data)
			}
			results[i] = encodeChunk(data[start:end], cfg)
			return nil
		})
	}
	_ = g.Wait() // encodeChunk never returns an error

	return results
}

// chunkDecodeTask describes one chunk's slice of the compressed stream and
// where its decoded bytes belong in the output buffer.
type chunkDecodeTask struct {
	payload                          []byte
	diffFlag, lookbackFlag, huffFlag byte
	outStart, outEnd                 int
}

// decodeChunksParallel mirrors encodeChunksParallel on the decode side.
// Each task writes into a disjoint region of out, so no synchronization is
// needed beyond waiting for every goroutine to finish.
func decodeChunksParallel(out []byte, tasks []chunkDecodeTask, threads int) error {
	var g errgroup.Group
	g.SetLimit(threads)
	for _, task := range tasks {
		task := task
		g.Go(func() error {
			decoded, err := decodeChunk(task.payload, task.diffFlag, task.lookbackFlag, task.huffFlag, task.outEnd-task.outStart)
			if err != nil {
				return err
			}
			copy(out[task.outStart:task.outEnd], decoded)
			return nil
		})
	}
	return g.Wait()
}
