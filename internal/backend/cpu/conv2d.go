package cpu

import (
	"fmt"

	"github.com/born-ml/metrics/internal/parallel"
	"github.com/born-ml/metrics/internal/tensor"
)

// Conv2D performs grouped 2D convolution.
//
// Input shape: [N, C_in, H, W]
// Kernel shape: [C_out, C_in/groups, K_h, K_w]
// Output shape: [N, C_out, out_h, out_w] with
// out_h = (H + 2*padding - K_h)/stride + 1 (and analogously for width).
//
// The input channels are split into `groups` contiguous groups; output
// channel oc reads only the input channels of group oc/(C_out/groups).
// With groups == C_in and a [C, 1, K_h, K_w] kernel this is a depthwise
// convolution: each channel is filtered by its own kernel with no
// cross-channel mixing, which is how the SSIM windowed statistics are
// computed.
func (cpu *CPUBackend) Conv2D(input, kernel *tensor.RawTensor, stride, padding, groups int) *tensor.RawTensor {
	inputShape := input.Shape()
	kernelShape := kernel.Shape()

	if len(inputShape) != 4 {
		panic(fmt.Sprintf("conv2d: input must be 4D [N,C,H,W], got %dD", len(inputShape)))
	}
	if len(kernelShape) != 4 {
		panic(fmt.Sprintf("conv2d: kernel must be 4D [C_out,C_in/groups,K_h,K_w], got %dD", len(kernelShape)))
	}
	if stride < 1 {
		panic(fmt.Sprintf("conv2d: stride must be >= 1, got %d", stride))
	}

	n := inputShape[0]
	cIn := inputShape[1]
	h := inputShape[2]
	w := inputShape[3]
	cOut := kernelShape[0]
	kh := kernelShape[2]
	kw := kernelShape[3]

	if groups < 1 || cIn%groups != 0 || cOut%groups != 0 {
		panic(fmt.Sprintf("conv2d: groups %d must divide input channels %d and output channels %d", groups, cIn, cOut))
	}
	if kernelShape[1] != cIn/groups {
		panic(fmt.Sprintf("conv2d: kernel channels %d != input channels per group %d", kernelShape[1], cIn/groups))
	}

	outH := (h+2*padding-kh)/stride + 1
	outW := (w+2*padding-kw)/stride + 1
	if outH <= 0 || outW <= 0 {
		panic(fmt.Sprintf("conv2d: invalid output dimensions: out_h=%d, out_w=%d (check kernel/stride/padding)", outH, outW))
	}

	output, err := tensor.NewRaw(tensor.Shape{n, cOut, outH, outW}, input.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("conv2d: failed to create output tensor: %v", err))
	}

	args := convArgs{
		n: n, cIn: cIn, h: h, w: w,
		cOut: cOut, kh: kh, kw: kw,
		outH: outH, outW: outW,
		stride: stride, padding: padding, groups: groups,
	}

	switch input.DType() {
	case tensor.Float32:
		conv2dFloat32(output.AsFloat32(), input.AsFloat32(), kernel.AsFloat32(), args)
	case tensor.Float64:
		conv2dFloat64(output.AsFloat64(), input.AsFloat64(), kernel.AsFloat64(), args)
	default:
		panic(fmt.Sprintf("conv2d: unsupported dtype %s", input.DType()))
	}

	return output
}

type convArgs struct {
	n, cIn, h, w            int
	cOut, kh, kw            int
	outH, outW              int
	stride, padding, groups int
}

// conv2dFloat32 computes the output planes in parallel; each (n, oc)
// pair owns a disjoint slice of the output buffer.
func conv2dFloat32(output, input, kernel []float32, a convArgs) {
	parallel.ForBatch(a.n, a.cOut, func(n, oc int) {
		convPlaneFloat32(output, input, kernel, a, n, oc)
	}, parallel.DefaultConfig())
}

func convPlaneFloat32(output, input, kernel []float32, a convArgs, n, oc int) {
	cInPerGroup := a.cIn / a.groups
	cOutPerGroup := a.cOut / a.groups

	icBase := (oc / cOutPerGroup) * cInPerGroup
	kBase := oc * cInPerGroup * a.kh * a.kw

	for oh := 0; oh < a.outH; oh++ {
		hStart := oh*a.stride - a.padding
		for ow := 0; ow < a.outW; ow++ {
			wStart := ow*a.stride - a.padding

			var sum float32
			for ic := 0; ic < cInPerGroup; ic++ {
				inBase := n*a.cIn*a.h*a.w + (icBase+ic)*a.h*a.w
				for kh := 0; kh < a.kh; kh++ {
					ih := hStart + kh
					if ih < 0 || ih >= a.h {
						continue
					}
					for kw := 0; kw < a.kw; kw++ {
						iw := wStart + kw
						if iw < 0 || iw >= a.w {
							continue
						}
						sum += input[inBase+ih*a.w+iw] * kernel[kBase+ic*a.kh*a.kw+kh*a.kw+kw]
					}
				}
			}
			output[n*a.cOut*a.outH*a.outW+oc*a.outH*a.outW+oh*a.outW+ow] = sum
		}
	}
}

func conv2dFloat64(output, input, kernel []float64, a convArgs) {
	parallel.ForBatch(a.n, a.cOut, func(n, oc int) {
		convPlaneFloat64(output, input, kernel, a, n, oc)
	}, parallel.DefaultConfig())
}

func convPlaneFloat64(output, input, kernel []float64, a convArgs, n, oc int) {
	cInPerGroup := a.cIn / a.groups
	cOutPerGroup := a.cOut / a.groups

	icBase := (oc / cOutPerGroup) * cInPerGroup
	kBase := oc * cInPerGroup * a.kh * a.kw

	for oh := 0; oh < a.outH; oh++ {
		hStart := oh*a.stride - a.padding
		for ow := 0; ow < a.outW; ow++ {
			wStart := ow*a.stride - a.padding

			var sum float64
			for ic := 0; ic < cInPerGroup; ic++ {
				inBase := n*a.cIn*a.h*a.w + (icBase+ic)*a.h*a.w
				for kh := 0; kh < a.kh; kh++ {
					ih := hStart + kh
					if ih < 0 || ih >= a.h {
						continue
					}
					for kw := 0; kw < a.kw; kw++ {
						iw := wStart + kw
						if iw < 0 || iw >= a.w {
							continue
						}
						sum += input[inBase+ih*a.w+iw] * kernel[kBase+ic*a.kh*a.kw+kh*a.kw+kw]
					}
				}
			}
			output[n*a.cOut*a.outH*a.outW+oc*a.outH*a.outW+oh*a.outW+ow] = sum
		}
	}
}
