package photometry

// SampleCSV is the g, r and i band profile of NGC 628 used throughout the
// course material. Modes fall back to it when no input file is configured,
// which makes the photometry commands runnable out of the box.
const SampleCSV = `SMA,mu_r,mu_g,mu_i
0.00,17.52,18.54,16.97
1.98,18.42,19.13,18.03
7.92,19.36,19.95,18.89
13.86,19.89,20.63,19.17
19.80,20.29,21.01,19.83
25.74,20.49,21.23,20.04
31.68,20.72,21.42,20.32
37.62,20.79,21.53,20.45
43.56,20.90,21.56,20.55
49.50,21.01,21.60,20.65
55.44,21.17,21.72,20.78
61.38,20.78,21.39,20.62
67.32,21.23,21.90,20.66
73.26,21.17,21.87,20.69
79.20,21.45,22.14,21.16
85.14,21.54,22.17,21.28
91.08,21.62,22.21,21.30
97.02,21.68,22.24,21.38
102.96,21.78,22.09,21.55
108.90,21.59,22.22,21.56
114.84,21.90,22.27,21.70
120.78,22.06,22.48,21.78
126.72,22.07,22.58,21.89
132.66,22.21,22.63,21.99
138.60,22.42,22.78,22.14
144.54,22.48,22.98,22.24
150.48,22.48,22.92,22.33
`
