// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addrconv_test

import (
	"github.com/btcsuite/bchaddr/addrconv"
	"github.com/btcsuite/bchaddr/cashaddr"
)

// addressVector is the same hash written as a legacy address, a CashAddr
// address, an SLP address and, for testnet hashes, a regtest address.
type addressVector struct {
	net     addrconv.Network
	kind    cashaddr.AddressKind
	legacy  string
	cash    string
	slp     string
	regtest string
}

// addressVectors were generated by the bchaddrjs project.
var addressVectors = []addressVector{
	{addrconv.MainNet, cashaddr.PubKeyHash,
		"1B9UNtBfkkpgt8kVbwLN9ktE62QKnMbDzR",
		"bitcoincash:qph5kuz78czq00e3t85ugpgd7xmer5kr7c5f6jdpwk",
		"simpleledger:qph5kuz78czq00e3t85ugpgd7xmer5kr7ccj3fcpsg",
		""},
	{addrconv.MainNet, cashaddr.PubKeyHash,
		"185K5yAfcrARrHjNVt4iAUHtkYqcogF4km",
		"bitcoincash:qpxenfpcf975gxdjmq9pk3xm6hjmfj6re56t60smsm",
		"simpleledger:qpxenfpcf975gxdjmq9pk3xm6hjmfj6re5ks359mw9",
		""},
	{addrconv.MainNet, cashaddr.PubKeyHash,
		"1EUrmffDt4SQQkGVfmDTyFcp57PuByeadW",
		"bitcoincash:qzfau6vrq980qntgp5e7l6cpfsf7jw88c5u7y85qx6",
		"simpleledger:qzfau6vrq980qntgp5e7l6cpfsf7jw88c5s90upqcy",
		""},
	{addrconv.MainNet, cashaddr.PubKeyHash,
		"1H6YWsFBxvDx6Ce9dyUFZvjG29npxQpBpR",
		"bitcoincash:qzcguejjfxld867ck4zudc9a6y8mf6ftgqqrxzfmlh",
		"simpleledger:qzcguejjfxld867ck4zudc9a6y8mf6ftgqvcdeumpf",
		""},
	{addrconv.MainNet, cashaddr.PubKeyHash,
		"15z9kQvBaZmTGRTRbP3K1VBM3BQvRsj4U4",
		"bitcoincash:qqm2lpqdfjsg8kkhwk0a3e3gypyswkd69urny99j70",
		"simpleledger:qqm2lpqdfjsg8kkhwk0a3e3gypyswkd69u0g07sjq3",
		""},
	{addrconv.MainNet, cashaddr.PubKeyHash,
		"1P238gziZdeS5Wj9nqLhQHSBK2Lz6zPSke",
		"bitcoincash:qrccfa4qm3xfcrta78v7du75jjaww0ylnss5nxsy9s",
		"simpleledger:qrccfa4qm3xfcrta78v7du75jjaww0ylnsu0ca9ymw",
		""},
	{addrconv.MainNet, cashaddr.PubKeyHash,
		"13WamBttqMB9AHNovKBCeLFGC5sbN4iZkh",
		"bitcoincash:qqdcsl6c879esyxyacmz7g6vtzwjjwtznsv65x6znz",
		"simpleledger:qqdcsl6c879esyxyacmz7g6vtzwjjwtznsqpla0zdu",
		""},
	{addrconv.MainNet, cashaddr.PubKeyHash,
		"17Sa1fdVXh2NVgcn5xoWzTLGNivg9gUDQ7",
		"bitcoincash:qpr2ddwe8qnnh8h20mmn4zgrharmy0vuy5y4gr8gl2",
		"simpleledger:qpr2ddwe8qnnh8h20mmn4zgrharmy0vuy5gwrcjgp5",
		""},
	{addrconv.MainNet, cashaddr.PubKeyHash,
		"1tQ2P2q5cVERY8AkGD4K8RGc6NmZQVTKN",
		"bitcoincash:qqymsmh0nhfhs9k5whhnjwfxyaumvtxm8g2z0s4f9y",
		"simpleledger:qqymsmh0nhfhs9k5whhnjwfxyaumvtxm8gxeytqfm6",
		""},
	{addrconv.MainNet, cashaddr.PubKeyHash,
		"1FJSGaq7Wip2ADSJboxMXniPhnYM8ym5Ri",
		"bitcoincash:qzwdmm83qjx7372wxgszaukan73ffn8ct54v6hs3dl",
		"simpleledger:qzwdmm83qjx7372wxgszaukan73ffn8ct5eh3v93np",
		""},
	{addrconv.MainNet, cashaddr.PubKeyHash,
		"1GxjvJnjF6t29gDnX4jF3u25u5JRqANYPV",
		"bitcoincash:qzh3f9me5z5sn2w8euap2gyrp6kr7gf6my5mhjey6s",
		"simpleledger:qzh3f9me5z5sn2w8euap2gyrp6kr7gf6mycqufvyyw",
		""},
	{addrconv.MainNet, cashaddr.PubKeyHash,
		"1N7gqB2GtgJG8ap3uwRoKyrcrrSTa4qfXu",
		"bitcoincash:qrneuckcx69clprn4nnr82tf8sycqrs3ac4tr8m86f",
		"simpleledger:qrneuckcx69clprn4nnr82tf8sycqrs3acesguw8yh",
		""},
	{addrconv.MainNet, cashaddr.PubKeyHash,
		"1JG6fXqEiu9H2fktGxqpFfGGLdy6ie7QgY",
		"bitcoincash:qz742xef07g9w8q52mx0q6m9hp05hnzm657wqd0ce2",
		"simpleledger:qz742xef07g9w8q52mx0q6m9hp05hnzm65j4tk6c85",
		""},
	{addrconv.MainNet, cashaddr.PubKeyHash,
		"14ipzRgYAbSZUnmeRNhhrPMQ8XQrzGg4wo",
		"bitcoincash:qq5dzl0drx8v0layyyuh5aupvxfs80ydmsp5444280",
		"simpleledger:qq5dzl0drx8v0layyyuh5aupvxfs80ydmsd07wq2e3",
		""},
	{addrconv.MainNet, cashaddr.PubKeyHash,
		"185FScTRCtVXRoy5gSDbuLnnQaQWqCK4A1",
		"bitcoincash:qpxedxtug7kpwd6tgf5vx08gjamel7sldsc40mxew8",
		"simpleledger:qpxedxtug7kpwd6tgf5vx08gjamel7slds5wyqnese",
		""},
	{addrconv.MainNet, cashaddr.PubKeyHash,
		"1NPRQpCNaeVvZLYw6Z3Y1XkKxLt9BrFTn5",
		"bitcoincash:qr4fs2m8tjmw54r2aqmadggzuagttkujgyrjs5d769",
		"simpleledger:qr4fs2m8tjmw54r2aqmadggzuagttkujgy0fm0c7ym",
		""},
	{addrconv.MainNet, cashaddr.PubKeyHash,
		"1Pa8bRApFwCZ8rkgCJh9mfUmj4XJMUYdom",
		"bitcoincash:qrmed4fxlhkgay9nxw7zn9muew5ktkyjnuuawvycze",
		"simpleledger:qrmed4fxlhkgay9nxw7zn9muew5ktkyjnusx9h3cu8",
		""},
	{addrconv.MainNet, cashaddr.PubKeyHash,
		"13HmTnwyKacGJCt2WseTReCeEAtG5ZAyci",
		"bitcoincash:qqv3cpvmu4h0vqa6aly0urec7kwtuhe49yz6e7922v",
		"simpleledger:qqv3cpvmu4h0vqa6aly0urec7kwtuhe49ywpj9s25j",
		""},
	{addrconv.MainNet, cashaddr.PubKeyHash,
		"1Mdob5JY1yuwoj6y76Vf3AQpoqUH5Aft8z",
		"bitcoincash:qr39scfteeu5l573lzerchh6wc4cqkxeturafzfkk9",
		"simpleledger:qr39scfteeu5l573lzerchh6wc4cqkxetu0xzeukgm",
		""},
	{addrconv.MainNet, cashaddr.PubKeyHash,
		"1D8zGeRj3Vkns6VwKxwNoW2mDsxF25w2Zy",
		"bitcoincash:qzzjgw37vwls805c9fw6g9vqyupadst6wgmane0s4l",
		"simpleledger:qzzjgw37vwls805c9fw6g9vqyupadst6wghxcz6stp",
		""},
	{addrconv.MainNet, cashaddr.ScriptHash,
		"3BqVJRg7Jf94yJSvj2zxaPFAEYh3MAyyw9",
		"bitcoincash:pph5kuz78czq00e3t85ugpgd7xmer5kr7crv8a2z4t",
		"simpleledger:pph5kuz78czq00e3t85ugpgd7xmer5kr7c0hvxlzt4",
		""},
	{addrconv.MainNet, cashaddr.ScriptHash,
		"38mL1Wf7AkUowTRocyjJb6epu58LSafEYf",
		"bitcoincash:ppxenfpcf975gxdjmq9pk3xm6hjmfj6re5dw8qhctx",
		"simpleledger:ppxenfpcf975gxdjmq9pk3xm6hjmfj6re5p4vmzc4c",
		""},
	{addrconv.MainNet, cashaddr.ScriptHash,
		"3FAshD9fRxknVuxvnrt4PsykDdgckmK7xD",
		"bitcoincash:pzfau6vrq980qntgp5e7l6cpfsf7jw88c5tmegnra8",
		"simpleledger:pzfau6vrq980qntgp5e7l6cpfsf7jw88c58qjnxrre",
		""},
	{addrconv.MainNet, cashaddr.ScriptHash,
		"3HnZSQjdWpYLBNLam58qzZ6CAg5YXBddBW",
		"bitcoincash:pzcguejjfxld867ck4zudc9a6y8mf6ftgqhxmdwcy2",
		"simpleledger:pzcguejjfxld867ck4zudc9a6y8mf6ftgqmaskmc65",
		""},
	{addrconv.MainNet, cashaddr.ScriptHash,
		"36gAfxQd8U5qMb9riUhuS7YHBhhdvjr8u1",
		"bitcoincash:pqm2lpqdfjsg8kkhwk0a3e3gypyswkd69u5ke2z39j",
		"simpleledger:pqm2lpqdfjsg8kkhwk0a3e3gypyswkd69ucdj3h3mv",
		""},
	{addrconv.MainNet, cashaddr.ScriptHash,
		"3Pi44EVA7XxpAgRauw1Hpuo7TYdhd7WMon",
		"bitcoincash:prccfa4qm3xfcrta78v7du75jjaww0ylns83wfh87d",
		"simpleledger:prccfa4qm3xfcrta78v7du75jjaww0ylnst29jz8qn",
		""},
	{addrconv.MainNet, cashaddr.ScriptHash,
		"34CbgjPLPFVXFT5F3Qqo4xcCLcAJwvkM85",
		"bitcoincash:pqdcsl6c879esyxyacmz7g6vtzwjjwtznsmlffapgl",
		"simpleledger:pqdcsl6c879esyxyacmz7g6vtzwjjwtznshyzjgpkp",
		""},
	{addrconv.MainNet, cashaddr.ScriptHash,
		"388awD7w5bLkarKDD4U7R5hCXFDPmHuWW7",
		"bitcoincash:ppr2ddwe8qnnh8h20mmn4zgrharmy0vuy5ns4vqtyh",
		"simpleledger:ppr2ddwe8qnnh8h20mmn4zgrharmy0vuy5lt7h4t6f",
		""},
	{addrconv.MainNet, cashaddr.ScriptHash,
		"32aQwvXGdWocWhpbsMsejknCkcfVB4ivTM",
		"bitcoincash:pqymsmh0nhfhs9k5whhnjwfxyaumvtxm8ga8jlj27e",
		"simpleledger:pqymsmh0nhfhs9k5whhnjwfxyaumvtxm8g3uey82q8",
		""},
	{addrconv.MainNet, cashaddr.ScriptHash,
		"3FzTC8KZ4d8QFP8jiucwxR5KrJq4bcevn7",
		"bitcoincash:pzwdmm83qjx7372wxgszaukan73ffn8ct5zf8chjkz",
		"simpleledger:pzwdmm83qjx7372wxgszaukan73ffn8ct5wjvrzjgu",
		""},
	{addrconv.MainNet, cashaddr.ScriptHash,
		"3HekqrHAo1CQEqvDeAPqUXP23bb9Sf9WoA",
		"bitcoincash:pzh3f9me5z5sn2w8euap2gyrp6kr7gf6myr72a78pd",
		"simpleledger:pzh3f9me5z5sn2w8euap2gyrp6kr7gf6my09pxt8ln",
		""},
	{addrconv.MainNet, cashaddr.ScriptHash,
		"3NohkiWiSaceDkWV336PkcDZ1NjBBWBewT",
		"bitcoincash:prneuckcx69clprn4nnr82tf8sycqrs3aczw7guyp5",
		"simpleledger:prneuckcx69clprn4nnr82tf8sycqrs3acw44nfyl2",
		""},
	{addrconv.MainNet, cashaddr.ScriptHash,
		"3Jx7b5KgGoTf7qTKQ4WQgHdCVAFpCKiqsB",
		"bitcoincash:pz742xef07g9w8q52mx0q6m9hp05hnzm65ftazgmzh",
		"simpleledger:pz742xef07g9w8q52mx0q6m9hp05hnzm659skeamuf",
		""},
	{addrconv.MainNet, cashaddr.ScriptHash,
		"35QquyAyiVkwZxU5YUNJH1iLH3haZ5TEfC",
		"bitcoincash:pq5dzl0drx8v0layyyuh5aupvxfs80ydmsk3g6jfuj",
		"simpleledger:pq5dzl0drx8v0layyyuh5aupvxfs80ydms62rp8fzv",
		""},
	{addrconv.MainNet, cashaddr.ScriptHash,
		"38mGN9wrknouWyfWoXtCKy9iZ6hEMRGsyp",
		"bitcoincash:ppxedxtug7kpwd6tgf5vx08gjamel7slds0sj5p646",
		"simpleledger:ppxedxtug7kpwd6tgf5vx08gjamel7sldsrte056ty",
		""},
	{addrconv.MainNet, cashaddr.ScriptHash,
		"3P5SLMgp8YpJeWFNDei8SA7G6sArkNKQKL",
		"bitcoincash:pr4fs2m8tjmw54r2aqmadggzuagttkujgy5hdm2apc",
		"simpleledger:pr4fs2m8tjmw54r2aqmadggzuagttkujgycvxqlalx",
		""},
	{addrconv.MainNet, cashaddr.ScriptHash,
		"3QG9WxfFoqWwE2T7KQMkCHqhsap1waSfDu",
		"bitcoincash:prmed4fxlhkgay9nxw7zn9muew5ktkyjnutcnrrmey",
		"simpleledger:prmed4fxlhkgay9nxw7zn9muew5ktkyjnu8rcckm86",
		""},
	{addrconv.MainNet, cashaddr.ScriptHash,
		"33ynPLSQsUvePNaTdyK3rGZaNhAyfeAmbT",
		"bitcoincash:pqv3cpvmu4h0vqa6aly0urec7kwtuhe49y4ly3zf33",
		"simpleledger:pqv3cpvmu4h0vqa6aly0urec7kwtuhe49yey02hf00",
		""},
	{addrconv.MainNet, cashaddr.ScriptHash,
		"3NKpWcnyZtEKttoQECAFTnmkxMkzgbT4WX",
		"bitcoincash:pr39scfteeu5l573lzerchh6wc4cqkxetu5c5dw4dc",
		"simpleledger:pr39scfteeu5l573lzerchh6wc4cqkxetucrlkm4nx",
		""},
	{addrconv.MainNet, cashaddr.ScriptHash,
		"3Dq1CBvAbQ5AxGCNT4byE8PhNQExZcR6Q2",
		"bitcoincash:pzzjgw37vwls805c9fw6g9vqyupadst6wgvcwkgnwz",
		"simpleledger:pzzjgw37vwls805c9fw6g9vqyupadst6wgqr9dansu",
		""},
	{addrconv.TestNet, cashaddr.PubKeyHash,
		"mqfRfwGeZnFwfFE7KWJjyg6Yx212iGi6Fi",
		"bchtest:qph5kuz78czq00e3t85ugpgd7xmer5kr7csm740kf2",
		"slptest:qph5kuz78czq00e3t85ugpgd7xmer5kr7ct0ew4pmh",
		"bchreg:qph5kuz78czq00e3t85ugpgd7xmer5kr7c28g5v92v"},
	{addrconv.TestNet, cashaddr.PubKeyHash,
		"mnbGP2FeRsbgdQCzDT35zPWDcYSKm4wrcg",
		"bchtest:qpxenfpcf975gxdjmq9pk3xm6hjmfj6re57e7gjvh8",
		"slptest:qpxenfpcf975gxdjmq9pk3xm6hjmfj6re59dengm96",
		"bchreg:qpxenfpcf975gxdjmq9pk3xm6hjmfj6re5y9gf3l5p"},
	{addrconv.TestNet, cashaddr.PubKeyHash,
		"mtzp4ikCh5sfBrk7PLBqoAq8w6zc48PsGn",
		"bchtest:qzfau6vrq980qntgp5e7l6cpfsf7jw88c5cvqqkhpx",
		"slptest:qzfau6vrq980qntgp5e7l6cpfsf7jw88c5rc8mvqnm",
		"bchreg:qzfau6vrq980qntgp5e7l6cpfsf7jw88c5zskp4yzq"},
	{addrconv.TestNet, cashaddr.PubKeyHash,
		"mwcVovLAmwfCsK7mMYSdPqwat9PXqcMiFt",
		"bchtest:qzcguejjfxld867ck4zudc9a6y8mf6ftgqy3z9tvct",
		"slptest:qzcguejjfxld867ck4zudc9a6y8mf6ftgql9973m2k",
		"bchreg:qzcguejjfxld867ck4zudc9a6y8mf6ftgq7d5yglmd"},
	{addrconv.TestNet, cashaddr.PubKeyHash,
		"mkW73U1APbCi3Xw3Jx1gqQPfuB1dHFDiEU",
		"bchtest:qqm2lpqdfjsg8kkhwk0a3e3gypyswkd69u8pqz89en",
		"slptest:qqm2lpqdfjsg8kkhwk0a3e3gypyswkd69uu48eajtw",
		"bchreg:qqm2lpqdfjsg8kkhwk0a3e3gypyswkd69uaakryk64"},
	{addrconv.TestNet, cashaddr.PubKeyHash,
		"n3XzRk5hNf5grdCmWQK5ECeWB1wgzzYzZd",
		"bchtest:qrccfa4qm3xfcrta78v7du75jjaww0ylns5xhpjnzv",
		"slptest:qrccfa4qm3xfcrta78v7du75jjaww0ylns0js6gys3",
		"bchreg:qrccfa4qm3xfcrta78v7du75jjaww0ylnsw6pq3qp2"},
	{addrconv.TestNet, cashaddr.PubKeyHash,
		"mi2Y4EyseNcPwPrRdt9aUFTb45UJHNgtbL",
		"bchtest:qqdcsl6c879esyxyacmz7g6vtzwjjwtznsggspc457",
		"slptest:qqdcsl6c879esyxyacmz7g6vtzwjjwtznsnuh6zzxr",
		"bchreg:qqdcsl6c879esyxyacmz7g6vtzwjjwtznsj5xqmxhc"},
	{addrconv.TestNet, cashaddr.PubKeyHash,
		"mmxXJiiULiTdGo6PoXmtpNYbEiXP2v746S",
		"bchtest:qpr2ddwe8qnnh8h20mmn4zgrharmy0vuy5q8vy9lck",
		"slptest:qpr2ddwe8qnnh8h20mmn4zgrharmy0vuy5mntllg2t",
		"bchreg:qpr2ddwe8qnnh8h20mmn4zgrharmy0vuy56m69xvms"},
	{addrconv.TestNet, cashaddr.PubKeyHash,
		"mgQMKS7otdvVCebnTqBS93dbU5yUZPsANB",
		"bchtest:qqymsmh0nhfhs9k5whhnjwfxyaumvtxm8gwsthh7zc",
		"slptest:qqymsmh0nhfhs9k5whhnjwfxyaumvtxm8g4yvvdfs9",
		"bchreg:qqymsmh0nhfhs9k5whhnjwfxyaumvtxm8g5vak5dp7"},
	{addrconv.TestNet, cashaddr.PubKeyHash,
		"mupPZdv6KkFGwKuvKNvjMhviZn93yznq73",
		"bchtest:qzwdmm83qjx7372wxgszaukan73ffn8ct5377sjx2r",
		"slptest:qzwdmm83qjx7372wxgszaukan73ffn8ct522etg3c7",
		"bchreg:qzwdmm83qjx7372wxgszaukan73ffn8ct5tzg334f9"},
	{addrconv.TestNet, cashaddr.PubKeyHash,
		"mwUhDMsi48KGvnhQEdhcspEQm4u8o754bx",
		"bchtest:qzh3f9me5z5sn2w8euap2gyrp6kr7gf6mysfn4mnav",
		"slptest:qzh3f9me5z5sn2w8euap2gyrp6kr7gf6myta5wpy03",
		"bchreg:qzh3f9me5z5sn2w8euap2gyrp6kr7gf6my2495cq72"},
	{addrconv.TestNet, cashaddr.PubKeyHash,
		"n2de8E7FhhjWuhHfdWQB9u4wir3AXqspCt",
		"bchtest:qrneuckcx69clprn4nnr82tf8sycqrs3ac3e8qesa4",
		"slptest:qrneuckcx69clprn4nnr82tf8sycqrs3ac2dqmr80g",
		"bchreg:qrneuckcx69clprn4nnr82tf8sycqrs3act93p6r7n"},
	{addrconv.TestNet, cashaddr.PubKeyHash,
		"mxn3xavDXvaXonEVzXpC5aUbCdZoaTEB2g",
		"bchtest:qz742xef07g9w8q52mx0q6m9hp05hnzm656uy2d07k",
		"slptest:qz742xef07g9w8q52mx0q6m9hp05hnzm65pgr3hcvt",
		"bchreg:qz742xef07g9w8q52mx0q6m9hp05hnzm65qqjtwuas"},
	{addrconv.TestNet, cashaddr.PubKeyHash,
		"mjEnHUmWycspFuFG8wg5gJZizX1ZtEF1XN",
		"bchtest:qq5dzl0drx8v0layyyuh5aupvxfs80ydms9x3jhaqn",
		"slptest:qq5dzl0drx8v0layyyuh5aupvxfs80ydms7jkfd2jw",
		"bchreg:qq5dzl0drx8v0layyyuh5aupvxfs80ydmsl68n5wr4"},
	{addrconv.TestNet, cashaddr.PubKeyHash,
		"mnbCjfYQ1uvnCvShQ1ByjG17Ga1Dk3RTXN",
		"bchtest:qpxedxtug7kpwd6tgf5vx08gjamel7sldsu8tuywfm",
		"slptest:qpxedxtug7kpwd6tgf5vx08gjamel7slds8nv87emx",
		"bchreg:qpxedxtug7kpwd6tgf5vx08gjamel7sldsxmaa8a2a"},
	{addrconv.TestNet, cashaddr.PubKeyHash,
		"n2uNhsHMPfwBLT2Yp81uqSxepLUr6zCnCz",
		"bchtest:qr4fs2m8tjmw54r2aqmadggzuagttkujgy8q5n0fae",
		"slptest:qr4fs2m8tjmw54r2aqmadggzuagttkujgyu5ng470y",
		"bchreg:qr4fs2m8tjmw54r2aqmadggzuagttkujgyauzjv67l"},
	{addrconv.TestNet, cashaddr.PubKeyHash,
		"n465tUFo4xdouyEHusfXbah6b481K5Nivk",
		"bchtest:qrmed4fxlhkgay9nxw7zn9muew5ktkyjnuc02tx099",
		"slptest:qrmed4fxlhkgay9nxw7zn9muew5ktkyjnurmdsuchc",
		"bchreg:qrmed4fxlhkgay9nxw7zn9muew5ktkyjnuznu29uxr"},
	{addrconv.TestNet, cashaddr.PubKeyHash,
		"mhoikr2x8c3X5KMeEScqFZQy6AUy4GeR4M",
		"bchtest:qqv3cpvmu4h0vqa6aly0urec7kwtuhe49yxgae8ads",
		"slptest:qqv3cpvmu4h0vqa6aly0urec7kwtuhe49yau6za2ld",
		"bchreg:qqv3cpvmu4h0vqa6aly0urec7kwtuhe49yu5tcywwk"},
	{addrconv.TestNet, cashaddr.PubKeyHash,
		"n29kt8PWq1MCaqaapfU2s5d9fq4yytS1xJ",
		"bchtest:qr39scfteeu5l573lzerchh6wc4cqkxetu80d9tp3e",
		"slptest:qr39scfteeu5l573lzerchh6wc4cqkxetuum273kry",
		"bchreg:qr39scfteeu5l573lzerchh6wc4cqkxetuanmygjjl"},
	{addrconv.TestNet, cashaddr.PubKeyHash,
		"msewZhWhrXC3eCyZ3XukdRF65sYwtbmARy",
		"bchtest:qzzjgw37vwls805c9fw6g9vqyupadst6wgl0h7d8jr",
		"slptest:qzzjgw37vwls805c9fw6g9vqyupadst6wgyms9hsq7",
		"bchreg:qzzjgw37vwls805c9fw6g9vqyupadst6wg9nplw539"},
	{addrconv.TestNet, cashaddr.ScriptHash,
		"2N3PhNAc8v7eRB65UQAcqCLERStuD93JXLD",
		"bchtest:pph5kuz78czq00e3t85ugpgd7xmer5kr7c87r6g4jh",
		"slptest:pph5kuz78czq00e3t85ugpgd7xmer5kr7cu2ypjzq2",
		"bchreg:pph5kuz78czq00e3t85ugpgd7xmer5kr7caz4mtx33"},
	{addrconv.TestNet, cashaddr.ScriptHash,
		"2MzKY5Fb8nCzA9F4MJ7MBD3e67RLWFE1ciP",
		"bchtest:ppxenfpcf975gxdjmq9pk3xm6hjmfj6re5fur840v6",
		"slptest:ppxenfpcf975gxdjmq9pk3xm6hjmfj6re5jgyu0c78",
		"bchreg:ppxenfpcf975gxdjmq9pk3xm6hjmfj6re5nq4xku0u"},
	{addrconv.TestNet, cashaddr.ScriptHash,
		"2N6j5kx5h3RG8hhbUTzVw1py1RytnZNYoXo",
		"bchtest:pzfau6vrq980qntgp5e7l6cpfsf7jw88c50fa0356m",
		"slptest:pzfau6vrq980qntgp5e7l6cpfsf7jw88c55a65trgx",
		"bchreg:pzfau6vrq980qntgp5e7l6cpfsf7jw88c544twj8ea"},
	{addrconv.TestNet, cashaddr.ScriptHash,
		"2N9LmW9ff8H3gP9y8SCkicW5TP2HiFpeK4z",
		"bchtest:pzcguejjfxld867ck4zudc9a6y8mf6ftgqn5l2v0rk",
		"slptest:pzcguejjfxld867ck4zudc9a6y8mf6ftgqgqc3kc3t",
		"bchreg:pzcguejjfxld867ck4zudc9a6y8mf6ftgqfgft0uqs"},
	{addrconv.TestNet, cashaddr.ScriptHash,
		"2MxENjhLejvbBZNnQPcKn44XYQ3uoiBT3fF",
		"bchtest:pqm2lpqdfjsg8kkhwk0a3e3gypyswkd69usyadqxzw",
		"slptest:pqm2lpqdfjsg8kkhwk0a3e3gypyswkd69uts6k63sn",
		"bchreg:pqm2lpqdfjsg8kkhwk0a3e3gypyswkd69u2ctvr4pg"},
	{addrconv.TestNet, cashaddr.ScriptHash,
		"2NFGG7yRBizUANU48b4dASrnNftqsNwzSM1",
		"bchtest:prccfa4qm3xfcrta78v7du75jjaww0ylnsrr2w4se3",
		"slptest:prccfa4qm3xfcrta78v7du75jjaww0ylnschd408tv",
		"bchreg:prccfa4qm3xfcrta78v7du75jjaww0ylnselu0kr6h"},
	{addrconv.TestNet, cashaddr.ScriptHash,
		"2MukokUKMzhzsTEhniYTfgubTYxNUi6PtTX",
		"bchtest:pqdcsl6c879esyxyacmz7g6vtzwjjwtznslddwlk0r",
		"slptest:pqdcsl6c879esyxyacmz7g6vtzwjjwtznsye249pa7",
		"bchreg:pqdcsl6c879esyxyacmz7g6vtzwjjwtzns93m0u9v9"},
	{addrconv.TestNet, cashaddr.ScriptHash,
		"2Mygnzx3xh3r6ndwktC5z32gTjbRZXkJpFr",
		"bchtest:ppr2ddwe8qnnh8h20mmn4zgrharmy0vuy5hz3tzurt",
		"slptest:ppr2ddwe8qnnh8h20mmn4zgrharmy0vuy5vkksct3k",
		"bchreg:ppr2ddwe8qnnh8h20mmn4zgrharmy0vuy5d782p0qd"},
	{addrconv.TestNet, cashaddr.ScriptHash,
		"2Mt8d1fTJEyJxiVT9YVVXMhmTxxsexLdJiE",
		"bchtest:pqymsmh0nhfhs9k5whhnjwfxyaumvtxm8ge4kcsae9",
		"slptest:pqymsmh0nhfhs9k5whhnjwfxyaumvtxm8gzp3r22tc",
		"bchreg:pqymsmh0nhfhs9k5whhnjwfxyaumvtxm8grfqenw6r"},
	{addrconv.TestNet, cashaddr.ScriptHash,
		"2N7YfFsFag5dkTAmHQ3EpaN4b4f3EPkwQkk",
		"bchtest:pzwdmm83qjx7372wxgszaukan73ffn8ct5xmrl4937",
		"slptest:pzwdmm83qjx7372wxgszaukan73ffn8ct5a0yy0jrr",
		"bchreg:pzwdmm83qjx7372wxgszaukan73ffn8ct5u847kkjc"},
	{addrconv.TestNet, cashaddr.ScriptHash,
		"2N9CxubDCQThkSdYmKJ1i6UNHFwoKBxp2Hj",
		"bchtest:pzh3f9me5z5sn2w8euap2gyrp6kr7gf6my8vw6usx3",
		"slptest:pzh3f9me5z5sn2w8euap2gyrp6kr7gf6myucfpx85v",
		"bchreg:pzh3f9me5z5sn2w8euap2gyrp6kr7gf6myascmlr9h"},
	{addrconv.TestNet, cashaddr.ScriptHash,
		"2NEMupTSk437zRY92iAiGNZCpDiwLvwnZEL",
		"bchtest:prneuckcx69clprn4nnr82tf8sycqrs3acxu607nxg",
		"slptest:prneuckcx69clprn4nnr82tf8sycqrs3acaga5yy54",
		"bchreg:prneuckcx69clprn4nnr82tf8sycqrs3acuqvwaq9w"},
	{addrconv.TestNet, cashaddr.ScriptHash,
		"2NAWKepFhtFy1Kd5s5C8HJEcThWTyzKiNGA",
		"bchtest:pz742xef07g9w8q52mx0q6m9hp05hnzm65dee92v9t",
		"slptest:pz742xef07g9w8q52mx0q6m9hp05hnzm65kd77smhk",
		"bchreg:pz742xef07g9w8q52mx0q6m9hp05hnzm65h90yflxd"},
	{addrconv.TestNet, cashaddr.ScriptHash,
		"2Mvy3yi71KxGHmk6dDbzAtxhbVPukK6MD5u",
		"bchtest:pq5dzl0drx8v0layyyuh5aupvxfs80ydmsjrvas7mw",
		"slptest:pq5dzl0drx8v0layyyuh5aupvxfs80ydmsfhtx2ffn",
		"bchreg:pq5dzl0drx8v0layyyuh5aupvxfs80ydmsgl6undcg"},
	{addrconv.TestNet, cashaddr.ScriptHash,
		"2MzKURtstNFKFimJ4UfW4wv8ymSuQCcZPN2",
		"bchtest:ppxedxtug7kpwd6tgf5vx08gjamel7sldstzknrdjx",
		"slptest:ppxedxtug7kpwd6tgf5vx08gjamel7sldssk3ge6qm",
		"bchreg:ppxedxtug7kpwd6tgf5vx08gjamel7slds37qjq73q"},
	{addrconv.TestNet, cashaddr.ScriptHash,
		"2NEdeQ6cqk1KerHsutnL1476XKDP2agcCh5",
		"bchtest:pr4fs2m8tjmw54r2aqmadggzuagttkujgys9fug2xy",
		"slptest:pr4fs2m8tjmw54r2aqmadggzuagttkujgyt3w8ja5e",
		"bchreg:pr4fs2m8tjmw54r2aqmadggzuagttkujgy2elate9z"},
	{addrconv.TestNet, cashaddr.ScriptHash,
		"2NFpMahbHRJ2HRp5ezXycpEpy5w2BmnVM9W",
		"bchtest:prmed4fxlhkgay9nxw7zn9muew5ktkyjnu02hypv7c",
		"slptest:prmed4fxlhkgay9nxw7zn9muew5ktkyjnu57slmmv9",
		"bchreg:prmed4fxlhkgay9nxw7zn9muew5ktkyjnu4kp9zla7"},
	{addrconv.TestNet, cashaddr.ScriptHash,
		"2MuXzT5NSUwRzbAD1K6vvUDYqb3P9RUvPgK",
		"bchtest:pqv3cpvmu4h0vqa6aly0urec7kwtuhe49y3dqkq7kd",
		"slptest:pqv3cpvmu4h0vqa6aly0urec7kwtuhe49y2e8d6fys",
		"bchreg:pqv3cpvmu4h0vqa6aly0urec7kwtuhe49yt3khrd4t"},
	{addrconv.TestNet, cashaddr.ScriptHash,
		"2NDt2aMj1BLjg6gRwuKn85jm2AhyAV8e2VF",
		"bchtest:pr39scfteeu5l573lzerchh6wc4cqkxetus2s2vz2y",
		"slptest:pr39scfteeu5l573lzerchh6wc4cqkxetut7h3k4ce",
		"bchreg:pr39scfteeu5l573lzerchh6wc4cqkxetu2kxt03fz"},
	{addrconv.TestNet, cashaddr.ScriptHash,
		"2N5PDFvrCCraXA3pv8CDqr5NxakT8KJb3Gg",
		"bchtest:pzzjgw37vwls805c9fw6g9vqyupadst6wgg2232yf7",
		"slptest:pzzjgw37vwls805c9fw6g9vqyupadst6wgn7d2snmr",
		"bchreg:pzzjgw37vwls805c9fw6g9vqyupadst6wgjkusfh2c"},
}
