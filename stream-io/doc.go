/*
Package streamio 记录所有包装器共同遵守的读取规则, 并提供可编排的内层流.

Reading Rules

	type Reader interface {
	    Read(p []byte) (n int, err error)
	}

1. A Read() call will read up to len(p) into p, when possible.
2. After a Read() call, n may be less then len(p). This is a short read, not an end of stream.
3. Upon error, a Read() call may still return n bytes in transfer buffer p.
   Wrappers in this module count those n bytes and pass err through untouched.
4. When a Read() call exhausts available data, a reader may return a non-zero n and err=io.EOF.
   However, depending on implementation, a reader may choose to return a non-zero n and err=nil at the end of stream.
   In that case, any subsequent read ops must return n=0, err=io.EOF.
5. A Read() call that returns n=0 and err=nil does not mean EOF as the next call to Read() may return more data.
*/
package streamio
