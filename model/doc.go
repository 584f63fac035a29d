// Package model provides the image models served by each backend.
//
// Each [ImageModel] knows its backend, its pricing and a static
// [Capabilities] record listing which request fields it honors and its
// qualitative quality and speed tiers.
//
// # Cost Estimates
//
// [Estimate] is a pure lookup with no network calls:
//
//	est, err := model.Estimate(imagegen.BackendDallE, imagegen.ImageQualityHD)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(est.PerImage, est.Per10, est.Per100) // $0.080 $0.800 $8.000
//
// Costs are held as [imagegen.Cost] micro-dollar integers, so Per10 and
// Per100 are exact multiples of PerImage.
//
// # Available Backends
//
//   - [DallE3]: $0.04 standard, $0.08 hd
//   - [StableDiffusionXL]: $0.02 flat
//   - [Automatic1111]: free
package model
